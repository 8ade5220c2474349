package booking

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusConfirmed  Status = "CONFIRMED"
	StatusCheckedIn  Status = "CHECKED_IN"
	StatusCheckedOut Status = "CHECKED_OUT"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := statusTransitions[s]
	return ok
}

func (s Status) IsTerminal() bool {
	next, ok := statusTransitions[s]
	return ok && len(next) == 0
}

func NewStatus(v string) (Status, error) {
	s := Status(v)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// statusTransitions is the single source of truth for the booking lifecycle.
// Every caller (admin tools, payment confirmation, cancellation) consults
// this table instead of re-deriving the rules.
var statusTransitions = map[Status][]Status{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn:  {StatusCheckedOut},
	StatusCheckedOut: {StatusCompleted},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// AvailableNextStatuses returns the allowed successors of a status. Unknown
// statuses yield an empty set, never a panic.
func AvailableNextStatuses(s Status) []Status {
	next, ok := statusTransitions[s]
	if !ok {
		return nil
	}
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

func CanTransition(from, to Status) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Kind distinguishes standard nightly stays from the front-desk hourly flow.
type Kind string

const (
	KindNightly Kind = "NIGHTLY"
	KindHourly  Kind = "HOURLY"
)

func (k Kind) String() string {
	return string(k)
}

// PaymentStatus mirrors the owning payment's lifecycle on the booking row so
// list views never need a join to show it.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentConfirmed PaymentStatus = "CONFIRMED"
	PaymentRejected  PaymentStatus = "REJECTED"
)

func (p PaymentStatus) String() string {
	return string(p)
}
