package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SarrafLink/exchange_locator_app/internal/apperrors"
	portssvc "github.com/SarrafLink/exchange_locator_app/internal/core/ports/services"
	"github.com/SarrafLink/exchange_locator_app/internal/dto"
	"github.com/SarrafLink/exchange_locator_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// officeHandler handles HTTP requests related to exchange offices.
type officeHandler struct {
	searchService portssvc.NearbySearchSvcFacade
}

// newOfficeHandler creates a new officeHandler.
func newOfficeHandler(ss portssvc.NearbySearchSvcFacade) *officeHandler {
	return &officeHandler{
		searchService: ss,
	}
}

// RegisterOfficeRoutes registers routes related to offices.
func RegisterOfficeRoutes(rg *gin.RouterGroup, searchService portssvc.NearbySearchSvcFacade, extra ...gin.HandlerFunc) {
	h := newOfficeHandler(searchService)

	offices := rg.Group("/offices", extra...)
	{
		offices.GET("/nearby", h.searchNearbyOffices)
	}
}

// searchNearbyOffices godoc
// @Summary Search exchange offices near a point
// @Description Finds offices within a radius of the given coordinates, evaluates currency-specific equivalent values and open/closed state, and returns a ranked, paginated result.
// @Tags offices
// @Produce json
// @Param latitude query number true "Latitude of the search center (-90..90)"
// @Param longitude query number true "Longitude of the search center (-180..180)"
// @Param radiusInKm query number true "Search radius in kilometers (0..1000]"
// @Param baseCurrency query string false "Base currency code or ID"
// @Param targetCurrency query string false "Target currency code or ID"
// @Param targetCurrencyRate query number false "Amount being converted (defaults to 1)"
// @Param availableCurrencies query string false "Comma-separated currency codes the office must trade"
// @Param isActive query boolean false "Filter on active offices"
// @Param isVerified query boolean false "Filter on verified offices"
// @Param isFeatured query boolean false "Filter on featured offices"
// @Param showOnlyOpenNow query boolean false "Only offices open at request time"
// @Param nearest query boolean false "Sort by ascending distance"
// @Param isPopular query boolean false "Sort by popularity proxies"
// @Param mostSearched query boolean false "Sort by trending proxies"
// @Param page query integer false "Page number (default 1)"
// @Param limit query integer false "Page size (default 9, max 100)"
// @Success 200 {object} dto.NearbyOfficesResponse
// @Failure 400 {object} map[string]string "Invalid search parameters or unsupported currency pair"
// @Failure 404 {object} map[string]string "Unknown currency code"
// @Failure 500 {object} map[string]string "Reference currency unconfigured or internal error"
// @Failure 503 {object} map[string]string "Backing store unavailable"
// @Failure 504 {object} map[string]string "Search timed out"
// @Router /offices/nearby [get]
func (h *officeHandler) searchNearbyOffices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.NearbySearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind nearby search query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	filter := req.ToSearchFilter()
	logger.Info("Received nearby office search",
		slog.Float64("latitude", filter.Latitude),
		slog.Float64("longitude", filter.Longitude),
		slog.Float64("radius_in_km", filter.RadiusInKm),
	)

	result, err := h.searchService.SearchNearby(c.Request.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Invalid search parameters", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrUnsupportedCurrencyPair):
			logger.Warn("Unsupported currency pair requested", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Currency not found", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrReferenceCurrencyUnconfigured):
			logger.Error("Reference currency is not configured")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Reference currency is not configured"})
		case errors.Is(err, apperrors.ErrTimeout):
			logger.Error("Nearby search timed out", slog.String("error", err.Error()))
			c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Search timed out, please retry"})
		case errors.Is(err, apperrors.ErrStoreUnavailable):
			logger.Error("Office store unavailable", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Office store unavailable, please retry"})
		default:
			logger.Error("Nearby search failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search nearby offices"})
		}
		return
	}

	logger.Info("Nearby office search completed",
		slog.Int("offices_in_page", len(result.Offices)),
		slog.Int("total_offices_in_area", result.TotalCount),
	)
	c.JSON(http.StatusOK, dto.ToNearbyOfficesResponse(result))
}
