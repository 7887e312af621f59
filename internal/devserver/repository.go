package devserver

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/techsolutions/horabank/internal/logger"
)

var userColumns = []string{
	"id", "name", "email", "password_hash", "role",
	"plan", "hours_total", "hours_used", "skills", "created_at",
}

var taskColumns = []string{
	"id", "client_id", "name", "description", "priority", "status",
	"estimated_hours", "actual_hours", "due_date", "assigned_to", "completed_at",
}

type sqliteRepository struct {
	db      *sql.DB
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// NewSQLiteRepository wraps an open sqlite connection in the
// [Repository] the handlers use.
func NewSQLiteRepository(db *sql.DB, log *logger.Logger) Repository {
	return &sqliteRepository{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		logger:  log,
	}
}

func (r *sqliteRepository) CreateUser(ctx context.Context, record UserRecord) error {
	query, args, err := r.builder.
		Insert("users").
		Columns("id", "name", "email", "password_hash", "role", "plan", "hours_total", "hours_used", "skills", "created_at").
		Values(record.ID, record.Name, record.Email, record.PasswordHash, record.Role,
			record.Plan, record.HoursTotal, record.HoursUsed, record.Skills, record.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert user: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *sqliteRepository) UserByEmail(ctx context.Context, email string) (UserRecord, error) {
	return r.userBy(ctx, sq.Eq{"email": email})
}

func (r *sqliteRepository) UserByID(ctx context.Context, id string) (UserRecord, error) {
	return r.userBy(ctx, sq.Eq{"id": id})
}

func (r *sqliteRepository) userBy(ctx context.Context, where sq.Eq) (UserRecord, error) {
	query, args, err := r.builder.
		Select(userColumns...).
		From("users").
		Where(where).
		ToSql()
	if err != nil {
		return UserRecord{}, fmt.Errorf("build select user: %w", err)
	}

	var record UserRecord
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&record.ID, &record.Name, &record.Email, &record.PasswordHash, &record.Role,
		&record.Plan, &record.HoursTotal, &record.HoursUsed, &record.Skills, &record.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return UserRecord{}, ErrNoUserFound
	}
	if err != nil {
		return UserRecord{}, fmt.Errorf("select user: %w", err)
	}

	return record, nil
}

func (r *sqliteRepository) UpdateUser(ctx context.Context, record UserRecord) (UserRecord, error) {
	query, args, err := r.builder.
		Update("users").
		Set("name", record.Name).
		Set("email", record.Email).
		Set("password_hash", record.PasswordHash).
		Set("skills", record.Skills).
		Where(sq.Eq{"id": record.ID}).
		ToSql()
	if err != nil {
		return UserRecord{}, fmt.Errorf("build update user: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return UserRecord{}, ErrEmailAlreadyExists
		}
		return UserRecord{}, fmt.Errorf("update user: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return UserRecord{}, ErrNoUserFound
	}

	return r.UserByID(ctx, record.ID)
}

func (r *sqliteRepository) ListUsers(ctx context.Context) ([]UserRecord, error) {
	query, args, err := r.builder.
		Select(userColumns...).
		From("users").
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select users: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer rows.Close()

	var records []UserRecord
	for rows.Next() {
		var record UserRecord
		if err = rows.Scan(
			&record.ID, &record.Name, &record.Email, &record.PasswordHash, &record.Role,
			&record.Plan, &record.HoursTotal, &record.HoursUsed, &record.Skills, &record.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

func (r *sqliteRepository) CreateTask(ctx context.Context, record TaskRecord) error {
	query, args, err := r.builder.
		Insert("tasks").
		Columns("id", "client_id", "name", "description", "priority", "status",
			"estimated_hours", "actual_hours", "due_date", "assigned_to", "completed_at").
		Values(record.ID, record.ClientID, record.Name, record.Description, record.Priority, record.Status,
			record.EstimatedHours, record.ActualHours, record.DueDate, record.AssignedTo, record.CompletedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert task: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert task: %w", err)
	}

	return nil
}

func (r *sqliteRepository) TasksByClient(ctx context.Context, clientID string) ([]TaskRecord, error) {
	return r.tasksWhere(ctx, sq.And{
		sq.Eq{"client_id": clientID},
		sq.NotEq{"status": "completed"},
	})
}

func (r *sqliteRepository) TaskHistory(ctx context.Context, clientID, status string) ([]TaskRecord, error) {
	where := sq.And{sq.Eq{"client_id": clientID}}
	if status != "" {
		where = append(where, sq.Eq{"status": status})
	}
	return r.tasksWhere(ctx, where)
}

func (r *sqliteRepository) tasksWhere(ctx context.Context, where sq.Sqlizer) ([]TaskRecord, error) {
	query, args, err := r.builder.
		Select(taskColumns...).
		From("tasks").
		Where(where).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select tasks: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select tasks: %w", err)
	}
	defer rows.Close()

	var records []TaskRecord
	for rows.Next() {
		var record TaskRecord
		if err = rows.Scan(
			&record.ID, &record.ClientID, &record.Name, &record.Description, &record.Priority, &record.Status,
			&record.EstimatedHours, &record.ActualHours, &record.DueDate, &record.AssignedTo, &record.CompletedAt,
		); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

func (r *sqliteRepository) RevokeToken(ctx context.Context, token string) error {
	query, args, err := r.builder.
		Insert("revoked_tokens").
		Columns("token").
		Values(token).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert revoked token: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		// revoking twice is not an error
		if isUniqueViolation(err) {
			return nil
		}
		return fmt.Errorf("insert revoked token: %w", err)
	}

	return nil
}

func (r *sqliteRepository) IsTokenRevoked(ctx context.Context, token string) (bool, error) {
	query, args, err := r.builder.
		Select("COUNT(*)").
		From("revoked_tokens").
		Where(sq.Eq{"token": token}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build select revoked token: %w", err)
	}

	var count int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("select revoked token: %w", err)
	}

	return count > 0, nil
}

// isUniqueViolation detects sqlite's UNIQUE constraint error without
// binding to the driver's error type.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
