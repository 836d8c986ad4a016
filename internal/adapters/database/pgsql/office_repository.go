package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/SarrafLink/exchange_locator_app/internal/core/domain"
	portsrepo "github.com/SarrafLink/exchange_locator_app/internal/core/ports/repositories"
	"github.com/SarrafLink/exchange_locator_app/internal/models"
	"github.com/SarrafLink/exchange_locator_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

// haversineExpr computes the great-circle distance in kilometers between the
// query center ($1 latitude, $2 longitude) and an office row. The acos
// argument is clamped against floating-point drift at the poles.
const haversineExpr = `(6371 * acos(least(1.0, greatest(-1.0,
		cos(radians($1)) * cos(radians(o.latitude)) * cos(radians(o.longitude) - radians($2))
		+ sin(radians($1)) * sin(radians(o.latitude))))))`

type PgxOfficeRepository struct {
	BaseRepository
}

// newPgxOfficeRepository creates a new repository for exchange-office data.
func newPgxOfficeRepository(pool *pgxpool.Pool) portsrepo.OfficeRepositoryFacade {
	return &PgxOfficeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.OfficeRepositoryFacade = (*PgxOfficeRepository)(nil)

// FindNearby returns every office within the query radius that matches the
// non-spatial filters, ordered by ascending distance, plus the total count of
// matches. The row and count queries are independent reads over the same
// filter, so they run concurrently. Rates and working hours of the returned
// offices are loaded afterwards.
func (r *PgxOfficeRepository) FindNearby(ctx context.Context, query domain.NearbyQuery) ([]domain.OfficeWithDistance, int, error) {
	where, args := buildOfficeFilters(query)

	inner := fmt.Sprintf(`
		SELECT o.office_id, o.name, o.address, o.city, o.country,
			o.longitude, o.latitude, o.is_active, o.is_verified, o.is_featured,
			o.created_at, o.created_by, o.last_updated_at, o.last_updated_by,
			%s AS distance_in_km
		FROM offices o
		%s`, haversineExpr, where)

	rowsQuery := fmt.Sprintf(`
		SELECT * FROM (%s) nearby
		WHERE nearby.distance_in_km <= $3
		ORDER BY nearby.distance_in_km ASC;`, inner)

	countQuery := fmt.Sprintf(`
		SELECT COUNT(*) FROM (%s) nearby
		WHERE nearby.distance_in_km <= $3;`, inner)

	var (
		offices    []domain.OfficeWithDistance
		totalCount int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		offices, err = r.queryOffices(gctx, rowsQuery, args)
		return err
	})
	g.Go(func() error {
		if err := r.Pool.QueryRow(gctx, countQuery, args...).Scan(&totalCount); err != nil {
			return fmt.Errorf("failed to count nearby offices: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	if err := r.attachRates(ctx, offices); err != nil {
		return nil, 0, err
	}
	if err := r.attachWorkingHours(ctx, offices); err != nil {
		return nil, 0, err
	}

	return offices, totalCount, nil
}

func (r *PgxOfficeRepository) queryOffices(ctx context.Context, query string, args []any) ([]domain.OfficeWithDistance, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query nearby offices: %w", err)
	}
	defer rows.Close()

	var offices []domain.OfficeWithDistance
	for rows.Next() {
		var (
			m        models.Office
			distance float64
		)
		err := rows.Scan(
			&m.OfficeID,
			&m.Name,
			&m.Address,
			&m.City,
			&m.Country,
			&m.Longitude,
			&m.Latitude,
			&m.IsActive,
			&m.IsVerified,
			&m.IsFeatured,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
			&distance,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan office row: %w", err)
		}
		offices = append(offices, domain.OfficeWithDistance{
			Office:       mapping.ToDomainOffice(m),
			DistanceInKm: distance,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating office rows: %w", err)
	}

	return offices, nil
}

// buildOfficeFilters assembles the WHERE clause for the non-spatial filters.
// Placeholders $1..$3 are reserved for latitude, longitude and radius; filter
// arguments continue from $4. Absent optional filters add no condition, which
// is distinct from filtering on false.
func buildOfficeFilters(query domain.NearbyQuery) (string, []any) {
	args := []any{query.Center.Latitude, query.Center.Longitude, query.RadiusInKm}
	var conditions []string

	addBool := func(column string, value *bool) {
		if value == nil {
			return
		}
		args = append(args, *value)
		conditions = append(conditions, fmt.Sprintf("o.%s = $%d", column, len(args)))
	}
	addBool("is_active", query.IsActive)
	addBool("is_verified", query.IsVerified)
	addBool("is_featured", query.IsFeatured)

	if len(query.AvailableCurrencies) > 0 {
		args = append(args, query.AvailableCurrencies)
		conditions = append(conditions, fmt.Sprintf(`EXISTS (
			SELECT 1 FROM office_rates r
			JOIN currencies c ON c.currency_id = r.target_currency_id
			WHERE r.office_id = o.office_id AND r.is_active AND c.code = ANY($%d))`, len(args)))
	}

	if query.BaseCurrencyID != "" && query.TargetCurrencyID != "" {
		args = append(args, query.BaseCurrencyID, query.TargetCurrencyID)
		conditions = append(conditions, fmt.Sprintf(`EXISTS (
			SELECT 1 FROM office_rates r
			WHERE r.office_id = o.office_id AND r.is_active
			AND r.base_currency_id = $%d AND r.target_currency_id = $%d)`, len(args)-1, len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// attachRates loads the rate lists of the returned offices in one query.
func (r *PgxOfficeRepository) attachRates(ctx context.Context, offices []domain.OfficeWithDistance) error {
	ids := officeIDs(offices)
	if len(ids) == 0 {
		return nil
	}

	query := `
		SELECT rate_id, office_id, base_currency_id, target_currency_id,
			buy_rate, sell_rate, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		FROM office_rates
		WHERE office_id = ANY($1);`

	rows, err := r.Pool.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to query office rates: %w", err)
	}
	defer rows.Close()

	modelRates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.OfficeRate, error) {
		var m models.OfficeRate
		err := row.Scan(
			&m.RateID,
			&m.OfficeID,
			&m.BaseCurrencyID,
			&m.TargetCurrencyID,
			&m.BuyRate,
			&m.SellRate,
			&m.IsActive,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		return m, err
	})
	if err != nil {
		return fmt.Errorf("failed to scan office rates: %w", err)
	}

	byOffice := indexOffices(offices)
	for _, m := range modelRates {
		if office := byOffice[m.OfficeID]; office != nil {
			office.Rates = append(office.Rates, mapping.ToDomainOfficeRate(m))
		}
	}
	return nil
}

// attachWorkingHours loads the weekly schedules of the returned offices in one query.
func (r *PgxOfficeRepository) attachWorkingHours(ctx context.Context, offices []domain.OfficeWithDistance) error {
	ids := officeIDs(offices)
	if len(ids) == 0 {
		return nil
	}

	query := `
		SELECT working_hour_id, office_id, weekday, from_time, to_time,
			has_break, break_from_time, break_to_time, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		FROM office_working_hours
		WHERE office_id = ANY($1);`

	rows, err := r.Pool.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to query office working hours: %w", err)
	}
	defer rows.Close()

	modelHours, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.WorkingHour, error) {
		var m models.WorkingHour
		err := row.Scan(
			&m.WorkingHourID,
			&m.OfficeID,
			&m.Weekday,
			&m.FromTime,
			&m.ToTime,
			&m.HasBreak,
			&m.BreakFromTime,
			&m.BreakToTime,
			&m.IsActive,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		return m, err
	})
	if err != nil {
		return fmt.Errorf("failed to scan office working hours: %w", err)
	}

	byOffice := indexOffices(offices)
	for _, m := range modelHours {
		if office := byOffice[m.OfficeID]; office != nil {
			office.WorkingHours = append(office.WorkingHours, mapping.ToDomainWorkingHour(m))
		}
	}
	return nil
}

func officeIDs(offices []domain.OfficeWithDistance) []string {
	ids := make([]string, len(offices))
	for i := range offices {
		ids[i] = offices[i].OfficeID
	}
	return ids
}

func indexOffices(offices []domain.OfficeWithDistance) map[string]*domain.Office {
	byID := make(map[string]*domain.Office, len(offices))
	for i := range offices {
		byID[offices[i].OfficeID] = &offices[i].Office
	}
	return byID
}
