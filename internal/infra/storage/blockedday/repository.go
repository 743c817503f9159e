package blockedday

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/tadbeer-it/TDB-FieldService/internal/domain"
	"github.com/tadbeer-it/TDB-FieldService/pkg/dbmetrics"
	"github.com/tadbeer-it/TDB-FieldService/pkg/psqlbuilder"
)

var blockedDayColumns = []string{
	"id",
	"date",
	"client_id",
	"status",
	"created_at",
	"updated_at",
}

// Repository repository for blocked days
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a blocked day repository
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert opens or closes a date for the given client (nil = global). One row
// per (date, client) pair; repeated calls overwrite the status.
func (r *Repository) Upsert(ctx context.Context, d *domain.BlockedDay) (*domain.BlockedDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_days").
		Columns("date", "client_id", "status").
		Values(d.Date, d.ClientID, d.Status).
		Suffix(`ON CONFLICT (date, COALESCE(client_id, 0))
			DO UPDATE SET status = EXCLUDED.status, updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&d.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	d.CreatedAt = createdAt.Time
	d.UpdatedAt = updatedAt.Time

	return d, nil
}

// GetForDate returns the blocked-day rows that could constrain the given
// client on the given date: the global row and the client's own row, if any
func (r *Repository) GetForDate(ctx context.Context, date time.Time, clientID *int64) ([]*domain.BlockedDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(blockedDayColumns...).
		From("blocked_days").
		Where(squirrel.Eq{"date": date})

	if clientID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.Eq{"client_id": nil},
			squirrel.Eq{"client_id": *clientID},
		})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"client_id": nil})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetForDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetForDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBlockedDays(rows)
}

// List returns all blocked-day rows, newest date first
func (r *Repository) List(ctx context.Context) ([]*domain.BlockedDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockedDayColumns...).
		From("blocked_days").
		OrderBy("date DESC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBlockedDays(rows)
}

func scanBlockedDays(rows *sql.Rows) ([]*domain.BlockedDay, error) {
	days := make([]*domain.BlockedDay, 0)

	for rows.Next() {
		var d domain.BlockedDay
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&d.ID,
			&d.Date,
			&d.ClientID,
			&d.Status,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBlockedDays - scan row: %v", ErrScanRow, err)
		}

		d.CreatedAt = createdAt.Time
		d.UpdatedAt = updatedAt.Time
		days = append(days, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBlockedDays - rows error: %v", ErrScanRow, err)
	}

	return days, nil
}
