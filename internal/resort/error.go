package resort

import "errors"

var (
	ErrInvalidDni        = errors.New("invalid dni value")
	ErrInvalidRoomNumber = errors.New("invalid room number")
	ErrInvalidGender     = errors.New("invalid gender value")
)

// CheckInStatus reports the outcome of a check-in attempt. The aggregate
// never raises an error for a rejected check-in; callers that do not care
// about the reason may ignore the returned status entirely and observe the
// historical fail-silently behaviour.
type CheckInStatus int

const (
	StatusApplied CheckInStatus = iota
	StatusRejectedInvalidRange
	StatusRejectedNoRoomAvailable
	StatusRejectedRoomBusy
)

func (s CheckInStatus) Applied() bool {
	return s == StatusApplied
}

func (s CheckInStatus) String() string {
	switch s {
	case StatusApplied:
		return "applied"
	case StatusRejectedInvalidRange:
		return "rejected: invalid date range"
	case StatusRejectedNoRoomAvailable:
		return "rejected: no room available"
	case StatusRejectedRoomBusy:
		return "rejected: room busy"
	}

	return "unknown"
}
