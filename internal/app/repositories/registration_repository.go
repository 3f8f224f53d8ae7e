package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nsounjou2-stack/inscription-concours/internal/app/models"
	"github.com/nsounjou2-stack/inscription-concours/internal/app/models/dto"
	"github.com/nsounjou2-stack/inscription-concours/internal/pkg/apperrors"
)

// SearchResultLimit caps quick-search results; the search box is for lookup,
// not export.
const SearchResultLimit = 50

// registrationColumns is the canonical column order shared by every SELECT
// and by scanRegistration.
var registrationColumns = []string{
	"id", "registration_number",
	"first_name", "last_name", "birth_date", "birth_place", "gender",
	"phone", "email", "city", "department", "region", "country",
	"bac_date", "bac_series", "bac_mention", "bac_type", "bac_file_url",
	"prob_date", "prob_series", "prob_mention", "prob_type", "prob_file_url",
	"father_name", "father_profession", "father_phone",
	"mother_name", "mother_profession", "mother_phone",
	"guardian_name", "guardian_relation", "guardian_phone",
	"photo_url",
	"payment_status", "payment_reference", "payment_amount", "payment_date",
	"created_at", "updated_at",
}

// RegistrationRepository handles database operations for registrations
type RegistrationRepository struct {
	db *pgxpool.Pool
}

// NewRegistrationRepository creates a new RegistrationRepository
func NewRegistrationRepository(db *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

func scanRegistration(row pgx.Row) (*models.Registration, error) {
	var reg models.Registration
	err := row.Scan(
		&reg.ID, &reg.RegistrationNumber,
		&reg.FirstName, &reg.LastName, &reg.BirthDate, &reg.BirthPlace, &reg.Gender,
		&reg.Phone, &reg.Email, &reg.City, &reg.Department, &reg.Region, &reg.Country,
		&reg.Bac.Date, &reg.Bac.Series, &reg.Bac.Mention, &reg.Bac.Type, &reg.Bac.FileURL,
		&reg.Prob.Date, &reg.Prob.Series, &reg.Prob.Mention, &reg.Prob.Type, &reg.Prob.FileURL,
		&reg.Father.Name, &reg.Father.Profession, &reg.Father.Phone,
		&reg.Mother.Name, &reg.Mother.Profession, &reg.Mother.Phone,
		&reg.Guardian.Name, &reg.Guardian.Relation, &reg.Guardian.Phone,
		&reg.PhotoURL,
		&reg.PaymentStatus, &reg.PaymentReference, &reg.PaymentAmount, &reg.PaymentDate,
		&reg.CreatedAt, &reg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// Create inserts a new registration and fills in its generated identifiers.
// A unique-constraint violation on registration_number is returned unwrapped
// so the caller can retry with a fresh number.
func (r *RegistrationRepository) Create(ctx context.Context, reg *models.Registration) error {
	query := squirrel.Insert("registrations").
		Columns(registrationColumns[1:]...).
		Values(
			reg.RegistrationNumber,
			reg.FirstName, reg.LastName, reg.BirthDate, reg.BirthPlace, reg.Gender,
			reg.Phone, reg.Email, reg.City, reg.Department, reg.Region, reg.Country,
			reg.Bac.Date, reg.Bac.Series, reg.Bac.Mention, reg.Bac.Type, reg.Bac.FileURL,
			reg.Prob.Date, reg.Prob.Series, reg.Prob.Mention, reg.Prob.Type, reg.Prob.FileURL,
			reg.Father.Name, reg.Father.Profession, reg.Father.Phone,
			reg.Mother.Name, reg.Mother.Profession, reg.Mother.Phone,
			reg.Guardian.Name, reg.Guardian.Relation, reg.Guardian.Phone,
			reg.PhotoURL,
			reg.PaymentStatus, reg.PaymentReference, reg.PaymentAmount, reg.PaymentDate,
			squirrel.Expr("CURRENT_TIMESTAMP"), squirrel.Expr("CURRENT_TIMESTAMP"),
		).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	return r.db.QueryRow(ctx, sql, args...).Scan(&reg.ID, &reg.CreatedAt, &reg.UpdatedAt)
}

// GetByID retrieves a registration by ID
func (r *RegistrationRepository) GetByID(ctx context.Context, id int64) (*models.Registration, error) {
	query := squirrel.Select(registrationColumns...).
		From("registrations").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	reg, err := scanRegistration(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return reg, nil
}

// List retrieves registrations with filtering and pagination, newest first.
func (r *RegistrationRepository) List(ctx context.Context, filter dto.ListFilter, offset uint64, limit int) ([]models.Registration, int64, error) {
	base := squirrel.Select().
		From("registrations").
		PlaceholderFormat(squirrel.Dollar)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		base = base.Where(squirrel.Or{
			squirrel.ILike{"first_name": pattern},
			squirrel.ILike{"last_name": pattern},
			squirrel.ILike{"registration_number": pattern},
			squirrel.ILike{"email": pattern},
		})
	}
	if filter.PaymentStatus != "" {
		base = base.Where(squirrel.Eq{"payment_status": filter.PaymentStatus})
	}
	if filter.Region != "" {
		base = base.Where(squirrel.Eq{"region": filter.Region})
	}

	// Count first so a page past the end still reports the real total
	countSQL, countArgs, err := base.Column("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting registrations: %w", err)
	}

	listSQL, listArgs, err := base.Columns(registrationColumns...).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	registrations := make([]models.Registration, 0, limit)
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		registrations = append(registrations, *reg)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return registrations, total, nil
}

// Update applies a partial update. The updates map is keyed by column name;
// an empty map is rejected before touching the database.
func (r *RegistrationRepository) Update(ctx context.Context, id int64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return apperrors.ErrNoFieldsToUpdate
	}

	query := squirrel.Update("registrations").
		Where("id = ?", id).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		PlaceholderFormat(squirrel.Dollar)
	for column, value := range updates {
		query = query.Set(column, value)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrRegistrationNotFound
	}

	return nil
}

// UpdatePayment applies a payment-status transition. Reference, amount and
// date only overwrite when provided; a nil value keeps the stored one.
func (r *RegistrationRepository) UpdatePayment(ctx context.Context, id int64, status models.PaymentStatus, reference *string, amount *int64, date *time.Time) (*models.Registration, error) {
	query := squirrel.Update("registrations").
		Set("payment_status", status).
		Set("payment_reference", squirrel.Expr("COALESCE(?, payment_reference)", reference)).
		Set("payment_amount", squirrel.Expr("COALESCE(?, payment_amount)", amount)).
		Set("payment_date", squirrel.Expr("COALESCE(?, payment_date)", date)).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where("id = ?", id).
		Suffix("RETURNING " + strings.Join(registrationColumns, ", ")).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	reg, err := scanRegistration(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return reg, nil
}

// BulkUpdatePayment applies one status to several registrations at once and
// returns how many rows actually changed. IDs that don't exist are skipped,
// not reported as errors.
func (r *RegistrationRepository) BulkUpdatePayment(ctx context.Context, ids []int64, status models.PaymentStatus, date *time.Time) (int64, error) {
	query := squirrel.Update("registrations").
		Set("payment_status", status).
		Set("payment_date", squirrel.Expr("COALESCE(?, payment_date)", date)).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": ids}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return tag.RowsAffected(), nil
}

// Delete removes a registration permanently.
func (r *RegistrationRepository) Delete(ctx context.Context, id int64) error {
	query := squirrel.Delete("registrations").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrRegistrationNotFound
	}

	return nil
}

// Search performs a quick lookup over names, registration number, email and
// phone, capped at SearchResultLimit rows.
func (r *RegistrationRepository) Search(ctx context.Context, term string) ([]models.Registration, error) {
	pattern := "%" + term + "%"
	query := squirrel.Select(registrationColumns...).
		From("registrations").
		Where(squirrel.Or{
			squirrel.ILike{"first_name": pattern},
			squirrel.ILike{"last_name": pattern},
			squirrel.ILike{"registration_number": pattern},
			squirrel.ILike{"email": pattern},
			squirrel.ILike{"phone": pattern},
		}).
		OrderBy("created_at DESC").
		Limit(SearchResultLimit).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var registrations []models.Registration
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		registrations = append(registrations, *reg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return registrations, nil
}

// GetStats computes the dashboard aggregates in a single query.
func (r *RegistrationRepository) GetStats(ctx context.Context) (*models.RegistrationStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE payment_status = 'completed'),
			COUNT(*) FILTER (WHERE payment_status = 'pending'),
			COUNT(*) FILTER (WHERE payment_status = 'failed'),
			COUNT(*) FILTER (WHERE gender = 'M'),
			COUNT(*) FILTER (WHERE gender = 'F'),
			COALESCE(SUM(payment_amount) FILTER (WHERE payment_status = 'completed'), 0)
		FROM registrations
	`

	var stats models.RegistrationStats
	err := r.db.QueryRow(ctx, query).Scan(
		&stats.Total,
		&stats.CompletedPayments,
		&stats.PendingPayments,
		&stats.FailedPayments,
		&stats.MaleCount,
		&stats.FemaleCount,
		&stats.TotalAmountCollected,
	)
	if err != nil {
		return nil, fmt.Errorf("error computing registration stats: %w", err)
	}

	return &stats, nil
}
