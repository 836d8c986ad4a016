package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SarrafLink/exchange_locator_app/internal/apperrors"
	"github.com/SarrafLink/exchange_locator_app/internal/core/domain"
	portssvc "github.com/SarrafLink/exchange_locator_app/internal/core/ports/services"
	"github.com/SarrafLink/exchange_locator_app/internal/dto"
	"github.com/SarrafLink/exchange_locator_app/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock NearbySearchService ---
type MockNearbySearchService struct {
	mock.Mock
}

func (m *MockNearbySearchService) SearchNearby(ctx context.Context, filter domain.SearchFilter) (*domain.NearbySearchResult, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NearbySearchResult), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.NearbySearchSvcFacade = (*MockNearbySearchService)(nil)

// --- Test Suite ---
type OfficeHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockSearchService *MockNearbySearchService
}

func (suite *OfficeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockSearchService = new(MockNearbySearchService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterOfficeRoutes(v1, suite.mockSearchService)
}

func (suite *OfficeHandlerTestSuite) performSearch(query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/offices/nearby?"+query, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *OfficeHandlerTestSuite) TestSearchNearby_Success() {
	value := decimal.RequireFromString("97.56")
	result := &domain.NearbySearchResult{
		Offices: []domain.RankedOffice{
			{
				Office:          domain.Office{OfficeID: "office-1", Name: "Atlas Exchange"},
				DistanceInKm:    0.8,
				EquivalentValue: &value,
				BestOffice:      true,
				IsCurrentlyOpen: true,
			},
		},
		TotalCount: 1,
		Page:       1,
		TotalPages: 1,
	}

	suite.mockSearchService.On("SearchNearby", mock.Anything, mock.MatchedBy(func(f domain.SearchFilter) bool {
		return f.Latitude == 33.5731 && f.Longitude == -7.5898 && f.RadiusInKm == 10 &&
			f.BaseCurrency == "MAD" && f.TargetCurrency == "EUR" &&
			f.TargetAmount.Equal(decimal.NewFromInt(1000)) &&
			f.Page == 1 && f.Limit == 9
	})).Return(result, nil).Once()

	w := suite.performSearch("latitude=33.5731&longitude=-7.5898&radiusInKm=10&baseCurrency=MAD&targetCurrency=EUR&targetCurrencyRate=1000")

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.NearbyOfficesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Offices, 1)
	suite.Equal("office-1", resp.Offices[0].OfficeID)
	suite.True(resp.Offices[0].BestOffice)
	suite.Equal(1, resp.OfficesInPage)
	suite.Equal(1, resp.TotalOfficesInArea)
	suite.mockSearchService.AssertExpectations(suite.T())
}

func (suite *OfficeHandlerTestSuite) TestSearchNearby_MissingCoordinates() {
	w := suite.performSearch("radiusInKm=10")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSearchService.AssertNotCalled(suite.T(), "SearchNearby")
}

func (suite *OfficeHandlerTestSuite) TestSearchNearby_DefaultsApplied() {
	result := &domain.NearbySearchResult{Offices: []domain.RankedOffice{}, Page: 1}

	suite.mockSearchService.On("SearchNearby", mock.Anything, mock.MatchedBy(func(f domain.SearchFilter) bool {
		// Unspecified page/limit/amount fall back to 1 / 9 / 1.
		return f.Page == 1 && f.Limit == 9 && f.TargetAmount.Equal(decimal.NewFromInt(1))
	})).Return(result, nil).Once()

	w := suite.performSearch("latitude=0&longitude=0&radiusInKm=5")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockSearchService.AssertExpectations(suite.T())
}

func (suite *OfficeHandlerTestSuite) TestSearchNearby_IsOpenAliasMerged() {
	result := &domain.NearbySearchResult{Offices: []domain.RankedOffice{}, Page: 1}

	suite.mockSearchService.On("SearchNearby", mock.Anything, mock.MatchedBy(func(f domain.SearchFilter) bool {
		return f.ShowOnlyOpenNow
	})).Return(result, nil).Once()

	w := suite.performSearch("latitude=0&longitude=0&radiusInKm=5&isOpen=true")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockSearchService.AssertExpectations(suite.T())
}

func (suite *OfficeHandlerTestSuite) TestSearchNearby_ErrorMapping() {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", apperrors.ErrValidation, http.StatusBadRequest},
		{"unsupported pair", apperrors.ErrUnsupportedCurrencyPair, http.StatusBadRequest},
		{"unknown currency", apperrors.ErrNotFound, http.StatusNotFound},
		{"reference unconfigured", apperrors.ErrReferenceCurrencyUnconfigured, http.StatusInternalServerError},
		{"timeout", apperrors.ErrTimeout, http.StatusGatewayTimeout},
		{"store unavailable", apperrors.ErrStoreUnavailable, http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		suite.Run(tc.name, func() {
			suite.mockSearchService.On("SearchNearby", mock.Anything, mock.Anything).
				Return(nil, tc.err).Once()

			w := suite.performSearch("latitude=0&longitude=0&radiusInKm=5")

			suite.Equal(tc.wantStatus, w.Code)
		})
	}
	suite.mockSearchService.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestOfficeHandler(t *testing.T) {
	suite.Run(t, new(OfficeHandlerTestSuite))
}
