package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nsounjou2-stack/inscription-concours/internal/app/models"
	"github.com/nsounjou2-stack/inscription-concours/internal/pkg/apperrors"
	"github.com/nsounjou2-stack/inscription-concours/internal/pkg/dberrors"
)

// AdminRepository handles database operations for administrator accounts
type AdminRepository struct {
	db *pgxpool.Pool
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{db: db}
}

const adminColumns = "id, email, password, full_name, is_active, last_login_at, created_at, updated_at"

func scanAdmin(row pgx.Row) (*models.Admin, error) {
	var admin models.Admin
	err := row.Scan(
		&admin.ID,
		&admin.Email,
		&admin.Password,
		&admin.FullName,
		&admin.IsActive,
		&admin.LastLoginAt,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// Create inserts a new administrator account.
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	query := squirrel.Insert("admins").
		Columns("email", "password", "full_name", "is_active").
		Values(admin.Email, admin.Password, admin.FullName, admin.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&admin.ID, &admin.CreatedAt, &admin.UpdatedAt)
	if dberrors.IsDuplicateConstraintError(err, "admins_email_key") {
		return apperrors.ErrEmailAlreadyExists
	}
	return err
}

// GetByID retrieves an administrator by ID
func (r *AdminRepository) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	admin, err := scanAdmin(r.db.QueryRow(ctx,
		"SELECT "+adminColumns+" FROM admins WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, fmt.Errorf("error retrieving admin: %w", err)
	}
	return admin, nil
}

// GetByEmail retrieves an administrator by email
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	admin, err := scanAdmin(r.db.QueryRow(ctx,
		"SELECT "+adminColumns+" FROM admins WHERE email = $1", email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, fmt.Errorf("error retrieving admin: %w", err)
	}
	return admin, nil
}

// EmailExists checks if an administrator account uses the given email
func (r *AdminRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM admins WHERE email = $1)", email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking admin existence: %w", err)
	}
	return exists, nil
}

// UpdateLastLogin records a successful login.
func (r *AdminRepository) UpdateLastLogin(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx,
		"UPDATE admins SET last_login_at = CURRENT_TIMESTAMP, updated_at = CURRENT_TIMESTAMP WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("error updating last login: %w", err)
	}
	return nil
}

// CountAdmins returns the number of administrator accounts.
func (r *AdminRepository) CountAdmins(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM admins").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting admins: %w", err)
	}
	return count, nil
}
