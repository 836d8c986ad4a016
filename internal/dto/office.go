package dto

import (
	"time"

	"github.com/SarrafLink/exchange_locator_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// WorkingHourResponse is the display form of one schedule entry.
type WorkingHourResponse struct {
	Weekday       string `json:"weekday"`
	FromTime      string `json:"fromTime"`
	ToTime        string `json:"toTime"`
	HasBreak      bool   `json:"hasBreak"`
	BreakFromTime string `json:"breakFromTime,omitempty"`
	BreakToTime   string `json:"breakToTime,omitempty"`
}

// RankedOfficeResponse is one office row of a nearby-search response.
type RankedOfficeResponse struct {
	OfficeID          string               `json:"officeID"`
	Name              string               `json:"name"`
	Address           string               `json:"address"`
	City              string               `json:"city"`
	Country           string               `json:"country"`
	Longitude         float64              `json:"longitude"`
	Latitude          float64              `json:"latitude"`
	IsActive          bool                 `json:"isActive"`
	IsVerified        bool                 `json:"isVerified"`
	IsFeatured        bool                 `json:"isFeatured"`
	DistanceInKm      float64              `json:"distanceInKm"`
	EquivalentValue   *decimal.Decimal     `json:"equivalentValue,omitempty"`
	BestOffice        bool                 `json:"bestOffice"`
	IsCurrentlyOpen   bool                 `json:"isCurrentlyOpen"`
	TodayWorkingHours *WorkingHourResponse `json:"todayWorkingHours,omitempty"`
	CreatedAt         time.Time            `json:"createdAt"`
}

// NearbyOfficesResponse is the full nearby-search response body.
type NearbyOfficesResponse struct {
	Offices            []RankedOfficeResponse `json:"offices"`
	OfficesInPage      int                    `json:"officesInPage"`
	TotalOfficesInArea int                    `json:"totalOfficesInArea"`
	CurrentPage        int                    `json:"currentPage"`
	TotalPages         int                    `json:"totalPages"`
	HasMore            bool                   `json:"hasMore"`
}

// ToRankedOfficeResponse converts one ranked domain office to its DTO.
func ToRankedOfficeResponse(o *domain.RankedOffice) RankedOfficeResponse {
	resp := RankedOfficeResponse{
		OfficeID:        o.OfficeID,
		Name:            o.Name,
		Address:         o.Address,
		City:            o.City,
		Country:         o.Country,
		Longitude:       o.Location.Longitude,
		Latitude:        o.Location.Latitude,
		IsActive:        o.IsActive,
		IsVerified:      o.IsVerified,
		IsFeatured:      o.IsFeatured,
		DistanceInKm:    o.DistanceInKm,
		EquivalentValue: o.EquivalentValue,
		BestOffice:      o.BestOffice,
		IsCurrentlyOpen: o.IsCurrentlyOpen,
		CreatedAt:       o.CreatedAt,
	}
	if h := o.TodayWorkingHours; h != nil {
		resp.TodayWorkingHours = &WorkingHourResponse{
			Weekday:       h.Weekday,
			FromTime:      h.FromTime,
			ToTime:        h.ToTime,
			HasBreak:      h.HasBreak,
			BreakFromTime: h.BreakFromTime,
			BreakToTime:   h.BreakToTime,
		}
	}
	return resp
}

// ToNearbyOfficesResponse converts a domain search result to the response body.
func ToNearbyOfficesResponse(result *domain.NearbySearchResult) NearbyOfficesResponse {
	offices := make([]RankedOfficeResponse, len(result.Offices))
	for i := range result.Offices {
		offices[i] = ToRankedOfficeResponse(&result.Offices[i])
	}
	return NearbyOfficesResponse{
		Offices:            offices,
		OfficesInPage:      len(offices),
		TotalOfficesInArea: result.TotalCount,
		CurrentPage:        result.Page,
		TotalPages:         result.TotalPages,
		HasMore:            result.HasMore,
	}
}
