package services

import (
	portsrepo "github.com/SarrafLink/exchange_locator_app/internal/core/ports/repositories"
	portssvc "github.com/SarrafLink/exchange_locator_app/internal/core/ports/services"
	"github.com/SarrafLink/exchange_locator_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.NearbySearch = NewNearbySearchService(
		repos.OfficeRepo,
		container.Currency,
		WithSearchTimeout(cfg.SearchTimeout),
	)

	return container
}
