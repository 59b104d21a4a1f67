package convert

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFahrenheitToCelsius(t *testing.T) {
	tcs := []struct {
		in       float64
		expected float64
	}{
		{32, 0.0},
		{212, 100.0},
		{5, -15.0},
		{25, -3.9},
		{7.5, -13.6},
		{22.5, -5.3},
		{-40, -40.0},
		{98.6, 37.0},
	}
	for _, tc := range tcs {
		assert.Equal(t, tc.expected, FahrenheitToCelsius(tc.in), "input %v", tc.in)
	}
}

func TestFahrenheitToCelsiusIsIdempotent(t *testing.T) {
	assert.Equal(t, FahrenheitToCelsius(61.3), FahrenheitToCelsius(61.3))
}

func TestParseFahrenheit(t *testing.T) {
	tcs := []struct {
		name        string
		in          any
		expected    float64
		expectedErr bool
	}{
		{"int", 212, 100.0, false},
		{"text", "32", 0.0, false},
		{"padded text", " 212 ", 100.0, false},
		{"float text", "98.6", 37.0, false},
		{"garbage", "warm", 0, true},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			out, err := ParseFahrenheit(tc.in)
			if tc.expectedErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, out)
		})
	}
}

func TestFormatTemperature(t *testing.T) {
	assert.Equal(t, "0°C", FormatTemperature(0))
	assert.Equal(t, "23.5°C", FormatTemperature(23.5))
	assert.Equal(t, "-15.0°C", FormatTemperature(-15.0))
	assert.Equal(t, "0.0°C", FormatTemperature(0.0))
	assert.Equal(t, "100.0°C", FormatTemperature(FahrenheitToCelsius(212)))
	assert.Equal(t, "-3.9°C", FormatTemperature(FahrenheitToCelsius(25)))
	assert.Equal(t, "12°C", FormatTemperature(int64(12)))
	assert.Equal(t, "-7°C", FormatTemperature(int8(-7)))
	assert.Equal(t, "5°C", FormatTemperature(uint(5)))
	assert.Equal(t, "1.5°C", FormatTemperature(float32(1.5)))
}

func TestConvertDate(t *testing.T) {
	tcs := []struct {
		in       string
		expected string
	}{
		{"2021-07-06", "Tuesday 06 July 2021"},
		{"2021-07-01", "Thursday 01 July 2021"},
		{"2021-07-02", "Friday 02 July 2021"},
		{"2020-02-29", "Saturday 29 February 2020"},
		{"2021-07-06T07:00:00+08:00", "Tuesday 06 July 2021"},
		{"2021-07-06T07:00:00", "Tuesday 06 July 2021"},
		{"2021-07-06T07:00", "Tuesday 06 July 2021"},
		{"2021-07-06 07:00", "Tuesday 06 July 2021"},
	}
	for _, tc := range tcs {
		t.Run(tc.in, func(t *testing.T) {
			out, err := ConvertDate(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, out)
		})
	}
}

func TestConvertDateInvalid(t *testing.T) {
	for _, in := range []string{"", "06/07/2021", "2021-02-30", "yesterday"} {
		t.Run(in, func(t *testing.T) {
			out, err := ConvertDate(in)
			assert.Empty(t, out)

			var fe *FormatError
			require.True(t, errors.As(err, &fe), "expected FormatError, got %v", err)
			assert.Equal(t, in, fe.Input)

			var pe *time.ParseError
			assert.True(t, errors.As(err, &pe))
		})
	}
}
