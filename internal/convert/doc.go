// Package convert holds the pure unit and date conversions used by the reports:
// Fahrenheit to Celsius, temperature formatting and ISO date rendering.
package convert
