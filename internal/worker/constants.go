package worker

import "time"

// Log messages
const (
	LogMsgWorkerJobFailed   = "Worker job failed"
	LogMsgWorkerJobComplete = "Worker job complete"
	LogMsgWorkerPanic       = "Worker job panicked"
)

// DefaultJobTimeout bounds a single job execution
const DefaultJobTimeout = 2 * time.Minute

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount      = 2
	TestQueueSize        = 10
	TestExpectedJobCount = 2
)
