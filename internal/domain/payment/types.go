package payment

import "errors"

var (
	ErrInvalidStatus    = errors.New("invalid payment status")
	ErrInvalidMethod    = errors.New("invalid payment method")
	ErrAlreadyFinalized = errors.New("payment is already finalized")
	ErrInvalidAmount    = errors.New("payment amount must be positive")
	ErrMissingPhone     = errors.New("mobile money payment requires a phone number")
	ErrMissingProvider  = errors.New("mobile money payment requires a provider")
	ErrEmptyCode        = errors.New("confirmation code cannot be empty")
	ErrEmptyReason      = errors.New("rejection reason cannot be empty")
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusRejected  Status = "REJECTED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusRejected:
		return true
	default:
		return false
	}
}

// IsFinal reports whether the status accepts no further transitions.
func (s Status) IsFinal() bool {
	return s == StatusConfirmed || s == StatusRejected
}

type Method string

const (
	MethodCard        Method = "CARD"
	MethodMobileMoney Method = "MOBILE_MONEY"
	MethodOther       Method = "OTHER"
)

func (m Method) String() string {
	return string(m)
}

func (m Method) IsValid() bool {
	switch m {
	case MethodCard, MethodMobileMoney, MethodOther:
		return true
	default:
		return false
	}
}

func NewMethod(s string) (Method, error) {
	m := Method(s)
	if !m.IsValid() {
		return "", ErrInvalidMethod
	}
	return m, nil
}

// RequiresManualConfirmation reports whether an admin must settle the
// payment by hand. Card payments settle synchronously through the gateway.
func (m Method) RequiresManualConfirmation() bool {
	return m == MethodMobileMoney || m == MethodOther
}
