package mapping

import (
	"github.com/SarrafLink/exchange_locator_app/internal/core/domain"
	"github.com/SarrafLink/exchange_locator_app/internal/models"
)

// ToDomainWorkingHour converts a model WorkingHour to a domain WorkingHour,
// flattening the nullable break columns.
func ToDomainWorkingHour(m models.WorkingHour) domain.WorkingHour {
	d := domain.WorkingHour{
		WorkingHourID: m.WorkingHourID,
		OfficeID:      m.OfficeID,
		Weekday:       m.Weekday,
		FromTime:      m.FromTime,
		ToTime:        m.ToTime,
		HasBreak:      m.HasBreak,
		IsActive:      m.IsActive,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
	if m.BreakFromTime != nil {
		d.BreakFromTime = *m.BreakFromTime
	}
	if m.BreakToTime != nil {
		d.BreakToTime = *m.BreakToTime
	}
	return d
}
