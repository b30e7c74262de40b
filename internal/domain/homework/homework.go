// Package homework holds the review API envelope rules and the status verdicts.
package homework

import "context"

// Envelope keys of the homework statuses API.
const (
	KeyHomeworks   = "homeworks"
	KeyCurrentDate = "current_date"
	KeyName        = "homework_name"
	KeyNameShort   = "name"
	KeyStatus      = "status"
)

// Status is the review state of a submitted homework.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// StatusAPI fetches raw homework status payloads updated since fromDate (unix seconds).
// The returned payload is decoded but not validated.
type StatusAPI interface {
	FetchStatuses(ctx context.Context, fromDate int64) (any, error)
}
