package events

import "time"

const PayoutSlipRequestedTopic = "hr.payout.slip.requested.v1"

// PayoutSlipRequestedEvent asks the slip consumer to pre-render the PDF for
// a freshly generated payout so the first download does not pay the
// rendering cost.
type PayoutSlipRequestedEvent struct {
	EventType  string    `json:"event_type"`
	PayoutID   string    `json:"payout_id"`
	EmployeeID string    `json:"employee_id"`
	Period     string    `json:"period"`
	OccurredAt time.Time `json:"occurred_at"`
}
