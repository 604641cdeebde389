package weather

import (
	"strconv"
	"strings"

	"weatherdash.app/pkg/errors"
)

// TemperatureUnit is the display unit for temperatures. Values are always
// stored in Celsius and converted on output.
type TemperatureUnit string

const (
	UnitCelsius    TemperatureUnit = "C"
	UnitFahrenheit TemperatureUnit = "F"
	UnitKelvin     TemperatureUnit = "K"
)

// MissingValue is rendered in place of an absent temperature
const MissingValue = "-"

const kelvinOffset = 273.15

// ParseTemperatureUnit parses a unit letter, ignoring case and surrounding space
func ParseTemperatureUnit(s string) (TemperatureUnit, error) {
	unit := TemperatureUnit(strings.ToUpper(strings.TrimSpace(s)))
	if !unit.IsValid() {
		return "", errors.NewValidationError("temperature unit must be one of: C, F, K")
	}
	return unit, nil
}

// IsValid reports whether the unit is one of C, F or K
func (u TemperatureUnit) IsValid() bool {
	return u == UnitCelsius || u == UnitFahrenheit || u == UnitKelvin
}

// Symbol returns the display suffix of the unit
func (u TemperatureUnit) Symbol() string {
	switch u {
	case UnitFahrenheit:
		return "°F"
	case UnitKelvin:
		return "K"
	default:
		return "°C"
	}
}

// Next cycles C -> F -> K -> C
func (u TemperatureUnit) Next() TemperatureUnit {
	switch u {
	case UnitCelsius:
		return UnitFahrenheit
	case UnitFahrenheit:
		return UnitKelvin
	default:
		return UnitCelsius
	}
}

// ConvertTemperature converts a Celsius value into unit. Unknown units are
// treated as Celsius.
func ConvertTemperature(celsius float64, unit TemperatureUnit) float64 {
	switch unit {
	case UnitFahrenheit:
		return celsius*9/5 + 32
	case UnitKelvin:
		return celsius + kelvinOffset
	default:
		return celsius
	}
}

// FormatTemperature renders the converted value with one decimal place.
// A nil input renders as MissingValue.
func FormatTemperature(celsius *float64, unit TemperatureUnit) string {
	if celsius == nil {
		return MissingValue
	}
	return strconv.FormatFloat(ConvertTemperature(*celsius, unit), 'f', 1, 64)
}

// FormatTemperatureValue is FormatTemperature for a value that is always present
func FormatTemperatureValue(celsius float64, unit TemperatureUnit) string {
	return FormatTemperature(&celsius, unit)
}
