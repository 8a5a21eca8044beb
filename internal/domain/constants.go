package domain

// Price submission bounds, in the game's smallest currency unit
const (
	MinPrice int64 = 1
	MaxPrice int64 = 999_999_999

	// ReportThreshold is the number of reports that moves a price to pending review
	ReportThreshold = 3
)
