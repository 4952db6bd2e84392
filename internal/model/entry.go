package model

// DailyEntry represents one calendar day of the work log.
// TotalHours and Income are derived fields and only change through
// recomputation in the worklog package.
type DailyEntry struct {
	Day        int     `json:"day" yaml:"day"`
	StartTime  string  `json:"start_time" yaml:"start_time"`
	EndTime    string  `json:"end_time" yaml:"end_time"`
	TotalHours float64 `json:"total_hours" yaml:"total_hours"`
	HourlyRate float64 `json:"hourly_rate" yaml:"hourly_rate"`
	Income     float64 `json:"income" yaml:"income"`
	Project    string  `json:"project" yaml:"project"`
	Notes      string  `json:"notes" yaml:"notes"`
}

// IsEmpty reports whether the entry carries no user input at all.
func (e DailyEntry) IsEmpty() bool {
	return e.StartTime == "" && e.EndTime == "" && e.HourlyRate == 0 &&
		e.Project == "" && e.Notes == ""
}

// UserInfo is the active month/year selector plus the user's display name.
type UserInfo struct {
	Name  string `json:"name" yaml:"name"`
	Month int    `json:"month" yaml:"month"`
	Year  int    `json:"year" yaml:"year"`
}

// Period returns the period selected by u.
func (u UserInfo) Period() Period {
	return Period{Year: u.Year, Month: u.Month}
}
