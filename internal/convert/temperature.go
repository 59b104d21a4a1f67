package convert

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cast"
	"golang.org/x/exp/constraints"
)

// DegreeCelsius is appended to every formatted temperature.
const DegreeCelsius = "°C"

// FahrenheitToCelsius converts f to Celsius rounded to one decimal place.
func FahrenheitToCelsius(f float64) float64 {
	return roundTenth((f - 32) * 5 / 9)
}

// ParseFahrenheit coerces v (a number or numeric text) and converts it to Celsius.
func ParseFahrenheit(v any) (float64, error) {
	if s, ok := v.(string); ok {
		v = strings.TrimSpace(s)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, fmt.Errorf("parse fahrenheit %v: %w", v, err)
	}
	return FahrenheitToCelsius(f), nil
}

// FormatTemperature renders v followed by the degree Celsius symbol.
// Floats always keep at least one decimal, so -15 prints as "-15.0°C".
func FormatTemperature[T constraints.Integer | constraints.Float](v T) string {
	switch x := any(v).(type) {
	case float32:
		return formatFloat(float64(x), 32) + DegreeCelsius
	case float64:
		return formatFloat(x, 64) + DegreeCelsius
	default:
		return fmt.Sprint(v) + DegreeCelsius
	}
}

func formatFloat(f float64, bitSize int) string {
	s := strconv.FormatFloat(f, 'f', -1, bitSize)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// roundTenth rounds through the decimal representation so ties are
// resolved on the exact binary value, half to even.
func roundTenth(f float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(f, 'f', 1, 64), 64)
	if err != nil {
		return f
	}
	return r
}
