package room

import "errors"

var (
	ErrInvalidRoomType      = errors.New("invalid room type")
	ErrInvalidClimateOption = errors.New("invalid climate option")
	ErrEmptyName            = errors.New("room name cannot be empty")
	ErrInvalidPrice         = errors.New("nightly price must be positive")
	ErrInvalidCapacity      = errors.New("capacity must be positive")
)

type RoomType string

const (
	TypeSingle RoomType = "SINGLE"
	TypeDouble RoomType = "DOUBLE"
	TypeSuite  RoomType = "SUITE"
	TypeFamily RoomType = "FAMILY"
	TypeDeluxe RoomType = "DELUXE"
)

func (t RoomType) String() string {
	return string(t)
}

func (t RoomType) IsValid() bool {
	switch t {
	case TypeSingle, TypeDouble, TypeSuite, TypeFamily, TypeDeluxe:
		return true
	default:
		return false
	}
}

func NewRoomType(s string) (RoomType, error) {
	t := RoomType(s)
	if !t.IsValid() {
		return "", ErrInvalidRoomType
	}
	return t, nil
}

// ClimateOption selects the ventilated or air-conditioned hourly rate.
// It only matters for the front-desk hourly booking flow.
type ClimateOption string

const (
	ClimateVentilated     ClimateOption = "VENTILE"
	ClimateAirConditioned ClimateOption = "CLIMATISE"
)

func (c ClimateOption) String() string {
	return string(c)
}

func (c ClimateOption) IsValid() bool {
	switch c {
	case ClimateVentilated, ClimateAirConditioned:
		return true
	default:
		return false
	}
}

func NewClimateOption(s string) (ClimateOption, error) {
	c := ClimateOption(s)
	if !c.IsValid() {
		return "", ErrInvalidClimateOption
	}
	return c, nil
}
