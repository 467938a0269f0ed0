package submission

import "fmt"

// Status is the lifecycle state of the current submission attempt.
type Status int

const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSucceeded
	StatusFailed
)

var statusNames = map[Status]string{
	StatusIdle:       "idle",
	StatusSubmitting: "submitting",
	StatusSucceeded:  "succeeded",
	StatusFailed:     "failed",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// MarshalText renders the status name.
func (s Status) MarshalText() ([]byte, error) {
	if _, ok := statusNames[s]; !ok {
		return nil, fmt.Errorf("submission: unknown status %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText parses a status name.
func (s *Status) UnmarshalText(text []byte) error {
	for status, name := range statusNames {
		if name == string(text) {
			*s = status
			return nil
		}
	}
	return fmt.Errorf("submission: unknown status %q", string(text))
}
