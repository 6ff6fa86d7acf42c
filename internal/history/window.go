package history

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Anish-A1/pricewise/models"
)

const (
	// Step is the navigation distance between adjacent windows, in months.
	Step = 3

	// YAxisPadding widens the chart's price range on both sides.
	YAxisPadding = 3000

	windowMonths = 3
	labelLayout  = "Jan 2006"
)

// dateLayouts are tried in order when parsing a sample date.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"Jan 2, 2006",
	"01/02/2006",
}

// ParseDate parses a sample date in any of the accepted layouts.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}

type datedSample struct {
	sample models.PriceSample
	at     time.Time
}

// month is a calendar month counted from year 0, so that month arithmetic
// needs no rollover handling.
type month int

func monthOf(t time.Time) month {
	return month(t.Year()*12 + int(t.Month()) - 1)
}

func (m month) first() time.Time {
	return time.Date(int(m)/12, time.Month(int(m)%12+1), 1, 0, 0, 0, 0, time.UTC)
}

// last returns the final instant of the month.
func (m month) last() time.Time {
	return (m + 1).first().Add(-time.Nanosecond)
}

// SelectWindow returns the samples dated within the three calendar months
// ending offset months before the month of the latest sample. Samples with
// unparseable dates are ignored.
func SelectWindow(samples []models.PriceSample, offset int) (models.PriceWindow, error) {
	dated := make([]datedSample, 0, len(samples))
	for _, s := range samples {
		at, err := ParseDate(s.Date)
		if err != nil {
			continue
		}
		dated = append(dated, datedSample{sample: s, at: at.UTC()})
	}
	if len(dated) == 0 {
		return models.PriceWindow{}, ErrNoSamples
	}

	earliest, latest := dated[0].at, dated[0].at
	for _, d := range dated[1:] {
		if d.at.Before(earliest) {
			earliest = d.at
		}
		if d.at.After(latest) {
			latest = d.at
		}
	}
	first, newest := monthOf(earliest), monthOf(latest)

	inRange := func(offset int) bool {
		end := newest - month(offset)
		return offset >= 0 && end >= first
	}
	if !inRange(offset) {
		return models.PriceWindow{}, fmt.Errorf("%w: %d", ErrOffsetOutOfRange, offset)
	}

	end := newest - month(offset)
	start := end - (windowMonths - 1)
	from, to := start.first(), end.last()

	window := models.PriceWindow{
		Offset:       offset,
		Start:        from,
		End:          to,
		Label:        from.Format(labelLayout) + " - " + end.first().Format(labelLayout),
		Samples:      make([]models.PriceSample, 0),
		CanGoBack:    inRange(offset + Step),
		CanGoForward: inRange(offset - Step),
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, d := range dated {
		if d.at.Before(from) || d.at.After(to) {
			continue
		}
		window.Samples = append(window.Samples, d.sample)
		lo = math.Min(lo, d.sample.Price)
		hi = math.Max(hi, d.sample.Price)
	}
	if len(window.Samples) > 0 {
		window.YMin = lo - YAxisPadding
		window.YMax = hi + YAxisPadding
	}

	return window, nil
}
