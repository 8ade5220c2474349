package room

import "errors"

var ErrUnknownRate = errors.New("no hourly rate for room type and climate option")

// hourlyRateCents is the single source of truth for front-desk hourly
// pricing. Nightly and extended stays use the room's stored nightly price
// instead (see NightlyPriceCents).
var hourlyRateCents = map[RoomType]map[ClimateOption]int64{
	TypeSingle: {
		ClimateVentilated:     1000,
		ClimateAirConditioned: 1500,
	},
	TypeDouble: {
		ClimateVentilated:     2000,
		ClimateAirConditioned: 2500,
	},
	TypeSuite: {
		ClimateVentilated:     3000,
		ClimateAirConditioned: 4000,
	},
	TypeFamily: {
		ClimateVentilated:     2500,
		ClimateAirConditioned: 3500,
	},
	TypeDeluxe: {
		ClimateVentilated:     4000,
		ClimateAirConditioned: 5000,
	},
}

// HourlyRateCents returns the per-hour rate for a room type and climate
// option. Unknown combinations fail with ErrUnknownRate rather than
// defaulting.
func HourlyRateCents(roomType RoomType, climate ClimateOption) (int64, error) {
	byClimate, ok := hourlyRateCents[roomType]
	if !ok {
		return 0, ErrUnknownRate
	}
	rate, ok := byClimate[climate]
	if !ok {
		return 0, ErrUnknownRate
	}
	return rate, nil
}

func HourlyPriceCents(roomType RoomType, climate ClimateOption, hours int) (int64, error) {
	if hours <= 0 {
		return 0, errors.New("duration must be at least one hour")
	}
	rate, err := HourlyRateCents(roomType, climate)
	if err != nil {
		return 0, err
	}
	return rate * int64(hours), nil
}

func NightlyPriceCents(nightlyRateCents int64, nights int) int64 {
	if nights <= 0 {
		return 0
	}
	return nightlyRateCents * int64(nights)
}
