package domain

import "time"

// PriceStatus is the moderation state of a community price submission
type PriceStatus string

const (
	PriceStatusApproved      PriceStatus = "approved"
	PriceStatusPendingReview PriceStatus = "pending_review"
	PriceStatusRejected      PriceStatus = "rejected"
)

// Price is the current market price of an item on one server.
// There is at most one row per (server, item).
type Price struct {
	ID          int         `json:"id"`
	ItemID      int         `json:"item_id"`
	ServerID    int         `json:"server_id"`
	Price       int64       `json:"price"`
	Status      PriceStatus `json:"status"`
	ReportCount int         `json:"report_count"`
	SubmittedBy *string     `json:"submitted_by,omitempty"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// IsApproved reports whether the price is visible to cost resolution.
func (p *Price) IsApproved() bool {
	return p != nil && p.Status == PriceStatusApproved
}

// PriceHistory is an append-only record of a submitted price
type PriceHistory struct {
	ID          int       `json:"id"`
	ItemID      int       `json:"item_id"`
	ServerID    int       `json:"server_id"`
	Price       int64     `json:"price"`
	SubmittedBy *string   `json:"submitted_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// PriceSubmission is a single price reported for an item
type PriceSubmission struct {
	ItemID int   `json:"item_id"`
	Price  int64 `json:"price"`
}

// ValidPrice reports whether p is inside the accepted submission bounds.
func ValidPrice(p int64) bool {
	return p >= MinPrice && p <= MaxPrice
}
