// Package report renders the overview and per-day text reports for a weather dataset.
package report

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/weather-summary/internal/convert"
	"github.com/KaramelBytes/weather-summary/internal/dataset"
	"github.com/KaramelBytes/weather-summary/internal/stats"
)

// Summary renders the "N Day Overview" for records: the lowest and highest
// temperatures with their dates, and the average low and high.
func Summary(records []dataset.WeatherRecord) (string, error) {
	lows, highs := dataset.Lows(records), dataset.Highs(records)

	low, ok := stats.Min(lows)
	if !ok {
		return "", fmt.Errorf("summary: %w", stats.ErrEmptyInput)
	}
	high, _ := stats.Max(highs)
	avgLow, err := stats.Mean(lows)
	if err != nil {
		return "", fmt.Errorf("summary: average low: %w", err)
	}
	avgHigh, err := stats.Mean(highs)
	if err != nil {
		return "", fmt.Errorf("summary: average high: %w", err)
	}

	dateLow, err := convert.ConvertDate(records[low.Index].Date)
	if err != nil {
		return "", err
	}
	dateHigh, err := convert.ConvertDate(records[high.Index].Date)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%d Day Overview\n", len(records)))
	b.WriteString(fmt.Sprintf("  The lowest temperature will be %s, and will occur on %s.\n", celsius(low.Value), dateLow))
	b.WriteString(fmt.Sprintf("  The highest temperature will be %s, and will occur on %s.\n", celsius(high.Value), dateHigh))
	b.WriteString(fmt.Sprintf("  The average low this week is %s.\n", celsius(avgLow)))
	b.WriteString(fmt.Sprintf("  The average high this week is %s.\n", celsius(avgHigh)))
	return b.String(), nil
}

// DailySummary renders one block per record, in order. No records yields "".
func DailySummary(records []dataset.WeatherRecord) (string, error) {
	var b strings.Builder
	for _, r := range records {
		date, err := convert.ConvertDate(r.Date)
		if err != nil {
			return "", err
		}
		b.WriteString(fmt.Sprintf("---- %s ----\n", date))
		b.WriteString(fmt.Sprintf("  Minimum Temperature: %s\n", celsius(float64(r.Low))))
		b.WriteString(fmt.Sprintf("  Maximum Temperature: %s\n\n", celsius(float64(r.High))))
	}
	return b.String(), nil
}

// Full renders the overview followed by a blank line and the daily breakdown.
func Full(records []dataset.WeatherRecord) (string, error) {
	summary, err := Summary(records)
	if err != nil {
		return "", err
	}
	daily, err := DailySummary(records)
	if err != nil {
		return "", err
	}
	return summary + "\n" + daily, nil
}

func celsius(fahrenheit float64) string {
	return convert.FormatTemperature(convert.FahrenheitToCelsius(fahrenheit))
}
