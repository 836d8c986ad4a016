package domain

// WorkingHour is one weekday entry of an office's weekly schedule.
// Times are "HH:MM" strings; a window whose ToTime is earlier than its
// FromTime wraps past midnight (e.g., 22:00-02:00). An office has at most one
// active entry per weekday.
type WorkingHour struct {
	WorkingHourID string `json:"workingHourID"` // Primary Key (UUID)
	OfficeID      string `json:"officeID"`
	Weekday       string `json:"weekday"` // lowercase weekday name, e.g. "monday"
	FromTime      string `json:"fromTime"`
	ToTime        string `json:"toTime"`
	HasBreak      bool   `json:"hasBreak"`
	BreakFromTime string `json:"breakFromTime,omitempty"` // must lie inside the working window
	BreakToTime   string `json:"breakToTime,omitempty"`
	IsActive      bool   `json:"isActive"`
	AuditFields
}
