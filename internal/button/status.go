package button

import "fmt"

// Status is the async lifecycle phase of a button's bound action.
type Status string

const (
	StatusDefault   Status = "default"
	StatusPending   Status = "pending"
	StatusFulfilled Status = "fulfilled"
	StatusRejected  Status = "rejected"
)

var statuses = []Status{StatusDefault, StatusPending, StatusFulfilled, StatusRejected}

// Statuses lists every valid status in lifecycle order.
func Statuses() []Status {
	out := make([]Status, len(statuses))
	copy(out, statuses)
	return out
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusDefault, StatusPending, StatusFulfilled, StatusRejected:
		return true
	default:
		return false
	}
}

// Settled reports whether s is a terminal status for the current promise.
func (s Status) Settled() bool {
	return s == StatusFulfilled || s == StatusRejected
}

func (s Status) String() string {
	return string(s)
}

// ParseStatus converts a string into a Status.
func ParseStatus(value string) (Status, error) {
	s := Status(value)
	if !s.Valid() {
		return "", fmt.Errorf("unknown status %q", value)
	}
	return s, nil
}
