package task

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/tadbeer-it/TDB-FieldService/internal/domain"
	"github.com/tadbeer-it/TDB-FieldService/pkg/dbmetrics"
	"github.com/tadbeer-it/TDB-FieldService/pkg/psqlbuilder"
)

var taskColumns = []string{
	"id",
	"booking_id",
	"client_id",
	"created_by_id",
	"text",
	"is_completed",
	"status",
	"type",
	"created_at",
	"updated_at",
}

// Repository repository for visit tasks
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a visit task repository
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new visit task
func (r *Repository) Create(ctx context.Context, t *domain.VisitTask) (*domain.VisitTask, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("visit_tasks").
		Columns(
			"booking_id",
			"client_id",
			"created_by_id",
			"text",
			"is_completed",
			"status",
			"type",
		).
		Values(
			t.BookingID,
			t.ClientID,
			t.CreatedByID,
			t.Text,
			t.IsCompleted,
			t.Status,
			t.Type,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&t.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return t, nil
}

// GetByID fetches a visit task by ID. Soft-deleted rows are not returned.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.VisitTask, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(taskColumns...).
		From("visit_tasks").
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NULL").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	t, err := scanTask(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan task: %v", ErrScanRow, err)
	}

	return t, nil
}

// GetByClientID lists all non-deleted visit tasks of a client, general and
// booking-bound alike, in creation order. The timeline builder does its own
// grouping and filtering over this list.
func (r *Repository) GetByClientID(ctx context.Context, clientID int64) ([]*domain.VisitTask, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(taskColumns...).
		From("visit_tasks").
		Where(squirrel.Eq{"client_id": clientID}).
		Where("deleted_at IS NULL").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByClientID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByClientID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanTasks(rows)
}

// UpdateStatus updates the task status together with the derived
// is_completed flag the mobile clients read
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.TaskStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("visit_tasks").
		Set("status", status).
		Set("is_completed", status == domain.TaskStatusCompleted).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NULL").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return execExpectingRow(ctx, executor, "UpdateStatus", query, args)
}

// SoftDelete flags the task as deleted without removing the row
func (r *Repository) SoftDelete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("visit_tasks").
		Set("deleted_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where("deleted_at IS NULL").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SoftDelete - build update query: %v", ErrBuildQuery, err)
	}

	return execExpectingRow(ctx, executor, "SoftDelete", query, args)
}

func execExpectingRow(ctx context.Context, executor dbmetrics.DBExecutor, method, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, method, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, method, err)
	}
	if rowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTask(row rowScanner) (*domain.VisitTask, error) {
	var t domain.VisitTask
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&t.ID,
		&t.BookingID,
		&t.ClientID,
		&t.CreatedByID,
		&t.Text,
		&t.IsCompleted,
		&t.Status,
		&t.Type,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time
	return &t, nil
}

func scanTasks(rows *sql.Rows) ([]*domain.VisitTask, error) {
	tasks := make([]*domain.VisitTask, 0)

	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanTasks - scan row: %v", ErrScanRow, err)
		}
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanTasks - rows error: %v", ErrScanRow, err)
	}

	return tasks, nil
}
