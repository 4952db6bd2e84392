package model

// MonthlySummary aggregates one month's DailyEntry collection.
type MonthlySummary struct {
	Month       int          `json:"month" yaml:"month"`
	Year        int          `json:"year" yaml:"year"`
	TotalHours  float64      `json:"total_hours" yaml:"total_hours"`
	TotalIncome float64      `json:"total_income" yaml:"total_income"`
	AverageRate float64      `json:"average_rate" yaml:"average_rate"`
	DaysWorked  int          `json:"days_worked" yaml:"days_worked"`
	TargetHours float64      `json:"target_hours" yaml:"target_hours"`
	Entries     []DailyEntry `json:"entries,omitempty" yaml:"entries,omitempty"`
}

// YearlySummary aggregates the monthly summaries of one year.
type YearlySummary struct {
	Year            int              `json:"year" yaml:"year"`
	Months          []MonthlySummary `json:"months" yaml:"months"`
	TotalHours      float64          `json:"total_hours" yaml:"total_hours"`
	TotalIncome     float64          `json:"total_income" yaml:"total_income"`
	AverageRate     float64          `json:"average_rate" yaml:"average_rate"`
	TotalDaysWorked int              `json:"total_days_worked" yaml:"total_days_worked"`
}
