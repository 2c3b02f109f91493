package application

import "strings"

// Status is the closed set of application states. The value is written as
// "pending" at submission and mutated afterwards only by an external reviewer
// process, so reads must tolerate any string.
type Status string

const (
	StatusPending   Status = "pending"
	StatusReviewing Status = "reviewing"
	StatusInterview Status = "interview"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
)

func AllStatuses() []Status {
	return []Status{StatusPending, StatusReviewing, StatusInterview, StatusAccepted, StatusRejected}
}

func ParseStatus(s string) (Status, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch Status(s) {
	case StatusPending, StatusReviewing, StatusInterview, StatusAccepted, StatusRejected:
		return Status(s), true
	default:
		return "", false
	}
}

// Canonical maps any stored value into the closed set. Unrecognized values
// degrade to pending rather than failing the tracker.
func Canonical(s string) Status {
	if st, ok := ParseStatus(s); ok {
		return st
	}
	return StatusPending
}

// Affordance is the display mapping for a status: one icon and one color per
// status, keyed for the front end.
type Affordance struct {
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

var affordances = map[Status]Affordance{
	StatusPending:   {Icon: "clock", Color: "yellow"},
	StatusReviewing: {Icon: "clock", Color: "blue"},
	StatusInterview: {Icon: "calendar", Color: "purple"},
	StatusAccepted:  {Icon: "check-circle", Color: "green"},
	StatusRejected:  {Icon: "x-circle", Color: "red"},
}

func (s Status) Affordance() Affordance {
	if a, ok := affordances[s]; ok {
		return a
	}
	return affordances[StatusPending]
}
