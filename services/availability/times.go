package availability

import (
	"context"
	"fmt"
	"time"

	"bookify/models"
	"bookify/utils"
)

// defaultTimeGrid is the fallback availability grid: 09:00 through
// 17:00 in 30-minute steps, 17:00 inclusive.
func defaultTimeGrid() []string {
	var times []string
	for h := 9; h < 17; h++ {
		times = append(times, fmt.Sprintf("%02d:00", h), fmt.Sprintf("%02d:30", h))
	}
	return append(times, "17:00")
}

// weekdayTimes holds the availability flags observed for one weekday in
// the provider's current calendar week.
type weekdayTimes struct {
	available   map[string]bool
	unavailable map[string]bool
}

// AvailableTimes derives the bookable times for a provider date:
// explicit slot rows first, then the weekday pattern observed in the
// current calendar week, then the default grid. Times held by an active
// booking are always subtracted, and past times are dropped when the
// date is today.
func (s *DefaultAvailabilityService) AvailableTimes(ctx context.Context, providerID, date string) (*models.DayAvailability, error) {
	target, err := utils.ParseDate(date)
	if err != nil {
		return nil, err
	}

	now := s.Clock.Now()
	today := now.Format(utils.DateLayout)

	rows, err := s.Slots.GetByProviderAndDate(ctx, providerID, date)
	if err != nil {
		return nil, err
	}

	var candidates []string
	if len(rows) > 0 {
		for _, row := range rows {
			if row.IsAvailable {
				candidates = append(candidates, row.Time)
			}
		}
	} else {
		candidates, err = s.weekPatternTimes(ctx, providerID, target, now)
		if err != nil {
			return nil, err
		}
		if date < today {
			candidates = nil
		}
	}

	booked, err := s.Bookings.ListActiveByProviderAndDate(ctx, providerID, date)
	if err != nil {
		return nil, err
	}
	bookedTimes := make(map[string]bool, len(booked))
	for _, b := range booked {
		bookedTimes[b.Time] = true
	}

	nowClock := now.Format(utils.TimeLayout)
	available := make([]string, 0, len(candidates))
	for _, t := range candidates {
		if bookedTimes[t] {
			continue
		}
		if date == today && t <= nowClock {
			continue
		}
		available = append(available, t)
	}

	return &models.DayAvailability{Date: date, AvailableTimes: available}, nil
}

// weekPatternTimes builds candidate times from the weekday pattern the
// provider configured in the current calendar week, falling back to the
// default grid when that weekday carries no rows.
func (s *DefaultAvailabilityService) weekPatternTimes(ctx context.Context, providerID string, target, now time.Time) ([]string, error) {
	weekStart := now.AddDate(0, 0, -int((now.Weekday()+6)%7)) // Monday
	weekEnd := weekStart.AddDate(0, 0, 6)

	reference, err := s.Slots.GetByProviderInRange(ctx, providerID,
		weekStart.Format(utils.DateLayout), weekEnd.Format(utils.DateLayout))
	if err != nil {
		return nil, err
	}

	patterns := make(map[time.Weekday]*weekdayTimes)
	for _, slot := range reference {
		d, err := utils.ParseDate(slot.Date)
		if err != nil {
			continue
		}
		wt, ok := patterns[d.Weekday()]
		if !ok {
			wt = &weekdayTimes{available: map[string]bool{}, unavailable: map[string]bool{}}
			patterns[d.Weekday()] = wt
		}
		if slot.IsAvailable {
			wt.available[slot.Time] = true
		} else {
			wt.unavailable[slot.Time] = true
		}
	}

	grid := defaultTimeGrid()
	wt, ok := patterns[target.Weekday()]
	if !ok {
		return grid, nil
	}

	var candidates []string
	for _, t := range grid {
		if wt.unavailable[t] {
			continue
		}
		if len(wt.available) > 0 && !wt.available[t] {
			continue
		}
		candidates = append(candidates, t)
	}
	return candidates, nil
}
