package availability

import (
	"context"
	"time"

	"bookify/models"
	"bookify/utils"
)

// ApplyPattern iterates every date in the inclusive range, classifies it
// against the pattern, and upserts slot rows: working times become
// available and non-working times unavailable on included dates, while
// excluded dates get every listed time marked unavailable. No date
// outside the range is touched.
func (s *DefaultAvailabilityService) ApplyPattern(ctx context.Context, providerID string, pattern models.WorkingPattern) (*models.PatternResult, error) {
	if err := validatePattern(pattern); err != nil {
		return nil, err
	}

	start, err := utils.ParseDate(pattern.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := utils.ParseDate(pattern.EndDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, utils.Validationf("end date %s precedes start date %s", pattern.EndDate, pattern.StartDate)
	}

	customDays := make(map[string]bool, len(pattern.Days))
	for _, day := range pattern.Days {
		customDays[day] = true
	}

	result := &models.PatternResult{
		IncludedDates: []string{},
		ExcludedDates: []string{},
	}

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		date := d.Format(utils.DateLayout)
		included := patternIncludes(pattern.Kind, customDays, d)

		if included {
			result.IncludedDates = append(result.IncludedDates, date)
			for _, clock := range pattern.WorkingTimes {
				created, err := s.upsertPatternSlot(ctx, providerID, date, clock, true)
				if err != nil {
					return nil, err
				}
				if created {
					result.Created++
				} else {
					result.Updated++
				}
			}
			for _, clock := range pattern.NonWorkingTimes {
				created, err := s.upsertPatternSlot(ctx, providerID, date, clock, false)
				if err != nil {
					return nil, err
				}
				if created {
					result.Created++
				}
				result.Disabled++
			}
		} else {
			result.ExcludedDates = append(result.ExcludedDates, date)
			for _, clock := range append(append([]string{}, pattern.WorkingTimes...), pattern.NonWorkingTimes...) {
				created, err := s.upsertPatternSlot(ctx, providerID, date, clock, false)
				if err != nil {
					return nil, err
				}
				if created {
					result.Created++
				}
				result.Disabled++
			}
		}
	}

	return result, nil
}

func (s *DefaultAvailabilityService) upsertPatternSlot(ctx context.Context, providerID, date, clock string, available bool) (bool, error) {
	return s.Slots.Upsert(ctx, models.TimeSlot{
		ProviderID:  providerID,
		Date:        date,
		Time:        clock,
		IsAvailable: available,
	})
}

func patternIncludes(kind string, customDays map[string]bool, d time.Time) bool {
	switch kind {
	case models.PatternEveryday:
		return true
	case models.PatternWeekdays:
		return d.Weekday() >= time.Monday && d.Weekday() <= time.Friday
	case models.PatternWeekends:
		return d.Weekday() == time.Saturday || d.Weekday() == time.Sunday
	case models.PatternCustom:
		return customDays[utils.WeekdayName(d.Weekday())]
	}
	return false
}

func validatePattern(pattern models.WorkingPattern) error {
	switch pattern.Kind {
	case models.PatternEveryday, models.PatternWeekdays, models.PatternWeekends:
	case models.PatternCustom:
		if len(pattern.Days) == 0 {
			return utils.Validationf("custom pattern requires a weekday list")
		}
	default:
		return utils.Validationf("unknown pattern kind %q", pattern.Kind)
	}
	if len(pattern.WorkingTimes) == 0 {
		return utils.Validationf("working times are required")
	}
	for _, clock := range append(append([]string{}, pattern.WorkingTimes...), pattern.NonWorkingTimes...) {
		if _, err := utils.ParseClock(clock); err != nil {
			return err
		}
	}
	return nil
}
