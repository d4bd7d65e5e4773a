package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/clinicnet/clinicnet/internal/pkg/models"
)

const staffColumns = `id, clinic_id, branch_id, email, password_hash, first_name, last_name, role, is_active, last_login_at, created_at, updated_at`

// FindStaffByEmail retrieves a staff user by email. Emails are stored lower case.
func (r *StaffRepo) FindStaffByEmail(ctx context.Context, email string) (*models.StaffUser, error) {
	return r.getStaffByField(ctx, "email", email)
}

// GetStaffByID retrieves a staff user by id
func (r *StaffRepo) GetStaffByID(ctx context.Context, id string) (*models.StaffUser, error) {
	return r.getStaffByField(ctx, "id", id)
}

// UpdateLastLogin records a successful login
func (r *StaffRepo) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE staff_users SET last_login_at = $1, updated_at = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, at, id)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	if rows == 0 {
		return models.ErrStaffNotFound
	}
	return nil
}

// getStaffByField is a helper to get a staff user by a trusted column name
func (r *StaffRepo) getStaffByField(ctx context.Context, field, value string) (*models.StaffUser, error) {
	query := fmt.Sprintf(`SELECT %s FROM staff_users WHERE %s = $1`, staffColumns, field)

	var user models.StaffUser
	if err := r.db.GetContext(ctx, &user, query, value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to get staff user: %w", err)
	}
	return &user, nil
}
