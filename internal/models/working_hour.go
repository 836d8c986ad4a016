package models

// WorkingHour mirrors one row of the office_working_hours table.
// Break columns are nullable; HasBreak gates them.
type WorkingHour struct {
	WorkingHourID string  `json:"workingHourID"` // Primary Key (UUID)
	OfficeID      string  `json:"officeID"`
	Weekday       string  `json:"weekday"`
	FromTime      string  `json:"fromTime"`
	ToTime        string  `json:"toTime"`
	HasBreak      bool    `json:"hasBreak"`
	BreakFromTime *string `json:"breakFromTime,omitempty"`
	BreakToTime   *string `json:"breakToTime,omitempty"`
	IsActive      bool    `json:"isActive"`
	AuditFields
}
