package models

// Working pattern kinds.
const (
	PatternEveryday = "everyday"
	PatternWeekdays = "weekdays"
	PatternWeekends = "weekends"
	PatternCustom   = "custom"
)

// WorkingPattern is a recurring weekday rule applied over an inclusive
// date range. Days is only consulted for the custom kind and holds
// lowercase weekday names ("monday" .. "sunday").
type WorkingPattern struct {
	Kind            string   `json:"pattern" binding:"required"`
	Days            []string `json:"days,omitempty"`
	StartDate       string   `json:"start_date" binding:"required"`
	EndDate         string   `json:"end_date" binding:"required"`
	WorkingTimes    []string `json:"time_slots" binding:"required"`
	NonWorkingTimes []string `json:"non_working_time_slots,omitempty"`
}

// PatternResult reports the effect of applying a working pattern.
type PatternResult struct {
	Created       int      `json:"created"`
	Updated       int      `json:"updated"`
	Disabled      int      `json:"disabled"`
	IncludedDates []string `json:"included_dates"`
	ExcludedDates []string `json:"excluded_dates"`
}
