package mapping

import (
	"github.com/SarrafLink/exchange_locator_app/internal/core/domain"
	"github.com/SarrafLink/exchange_locator_app/internal/models"
)

// ToDomainOffice converts a model Office to a domain Office. Rates and working
// hours are attached separately by the repository.
func ToDomainOffice(m models.Office) domain.Office {
	return domain.Office{
		OfficeID: m.OfficeID,
		Name:     m.Name,
		Address:  m.Address,
		City:     m.City,
		Country:  m.Country,
		Location: domain.GeoPoint{
			Longitude: m.Longitude,
			Latitude:  m.Latitude,
		},
		IsActive:    m.IsActive,
		IsVerified:  m.IsVerified,
		IsFeatured:  m.IsFeatured,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainOfficeRate converts a model OfficeRate to a domain OfficeRate.
func ToDomainOfficeRate(m models.OfficeRate) domain.OfficeRate {
	return domain.OfficeRate{
		RateID:           m.RateID,
		OfficeID:         m.OfficeID,
		BaseCurrencyID:   m.BaseCurrencyID,
		TargetCurrencyID: m.TargetCurrencyID,
		BuyRate:          m.BuyRate,
		SellRate:         m.SellRate,
		IsActive:         m.IsActive,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}
