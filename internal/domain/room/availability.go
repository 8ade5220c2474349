package room

import "time"

// Tunable thresholds for the occupancy classifier. Call sites must not
// hard-code these values.
const (
	CleaningBufferMinutes = 10
	EndingSoonMinutes     = 30
)

type Occupancy string

const (
	OccupancyAvailable      Occupancy = "AVAILABLE"
	OccupancyNormal         Occupancy = "OCCUPIED"
	OccupancyEndingSoon     Occupancy = "OCCUPIED_ENDING_SOON"
	OccupancyOverdue        Occupancy = "OCCUPIED_OVERDUE"
	OccupancyCleaningBuffer Occupancy = "CLEANING_BUFFER"
)

func (o Occupancy) String() string {
	return string(o)
}

// OccupancyInput carries the booking facts needed to classify a room.
// ActiveCheckOut is the checkout of the booking currently overlapping "now",
// nil when the room has no active booking. LastCheckOut is the most recent
// past checkout, nil when the room has never been occupied.
type OccupancyInput struct {
	ActiveCheckOut *time.Time
	LastCheckOut   *time.Time
}

// ClassifyOccupancy derives the display status of a room at a point in time.
// A room stays in the cleaning buffer for CleaningBufferMinutes after its
// last checkout before being offered as available again.
func ClassifyOccupancy(in OccupancyInput, now time.Time) Occupancy {
	if in.ActiveCheckOut != nil {
		minutesLeft := in.ActiveCheckOut.Sub(now).Minutes()
		switch {
		case minutesLeft < 0:
			return OccupancyOverdue
		case minutesLeft <= EndingSoonMinutes:
			return OccupancyEndingSoon
		default:
			return OccupancyNormal
		}
	}

	if in.LastCheckOut != nil {
		sinceCheckout := now.Sub(*in.LastCheckOut)
		if sinceCheckout >= 0 && sinceCheckout.Minutes() < CleaningBufferMinutes {
			return OccupancyCleaningBuffer
		}
	}

	return OccupancyAvailable
}
