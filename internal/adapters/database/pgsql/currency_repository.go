package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SarrafLink/exchange_locator_app/internal/apperrors"
	"github.com/SarrafLink/exchange_locator_app/internal/core/domain"
	portsrepo "github.com/SarrafLink/exchange_locator_app/internal/core/ports/repositories"
	"github.com/SarrafLink/exchange_locator_app/internal/models"
	"github.com/SarrafLink/exchange_locator_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const currencyColumns = `currency_id, code, symbol, name, is_reference, created_at, created_by, last_updated_at, last_updated_by`

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepositoryFacade {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

// FindCurrencyByCode retrieves a currency by its 3-letter code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	query := fmt.Sprintf(`SELECT %s FROM currencies WHERE code = $1;`, currencyColumns)
	return r.findOne(ctx, query, code)
}

// FindCurrencyByID retrieves a currency by its internal ID.
func (r *PgxCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error) {
	query := fmt.Sprintf(`SELECT %s FROM currencies WHERE currency_id = $1;`, currencyColumns)
	return r.findOne(ctx, query, currencyID)
}

// FindReferenceCurrency retrieves the single currency designated as the
// canonical reference.
func (r *PgxCurrencyRepository) FindReferenceCurrency(ctx context.Context) (*domain.Currency, error) {
	query := fmt.Sprintf(`SELECT %s FROM currencies WHERE is_reference LIMIT 1;`, currencyColumns)
	return r.findOne(ctx, query)
}

func (r *PgxCurrencyRepository) findOne(ctx context.Context, query string, args ...any) (*domain.Currency, error) {
	var m models.Currency
	err := r.Pool.QueryRow(ctx, query, args...).Scan(
		&m.CurrencyID,
		&m.Code,
		&m.Symbol,
		&m.Name,
		&m.IsReference,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query currency: %w", err)
	}

	d := mapping.ToDomainCurrency(m)
	return &d, nil
}

// ListCurrencies retrieves all currencies ordered by code.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := fmt.Sprintf(`SELECT %s FROM currencies ORDER BY code;`, currencyColumns)

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	modelCurrencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		var m models.Currency
		err := row.Scan(
			&m.CurrencyID,
			&m.Code,
			&m.Symbol,
			&m.Name,
			&m.IsReference,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}

	return mapping.ToDomainCurrencySlice(modelCurrencies), nil
}
