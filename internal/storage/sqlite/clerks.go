package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/grocerybill/internal/models"
	"github.com/mmynk/grocerybill/internal/storage"
)

// CreateClerk inserts a new clerk into the database.
func (s *SQLiteStore) CreateClerk(ctx context.Context, clerk *models.Clerk) error {
	query := `
		INSERT INTO clerks (id, name, password_hash, created_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		clerk.ID,
		clerk.Name,
		clerk.PasswordHash,
		clerk.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create clerk: %w", err)
	}

	return nil
}

// GetClerkByName retrieves a clerk by login name.
func (s *SQLiteStore) GetClerkByName(ctx context.Context, name string) (*models.Clerk, error) {
	query := `
		SELECT id, name, password_hash, created_at
		FROM clerks
		WHERE name = ?
	`

	clerk, err := scanClerk(s.db.QueryRowContext(ctx, query, name))
	if err == sql.ErrNoRows {
		return nil, nil // Clerk not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get clerk by name: %w", err)
	}

	return clerk, nil
}

// GetClerkByID retrieves a clerk by ID.
func (s *SQLiteStore) GetClerkByID(ctx context.Context, id string) (*models.Clerk, error) {
	query := `
		SELECT id, name, password_hash, created_at
		FROM clerks
		WHERE id = ?
	`

	clerk, err := scanClerk(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", storage.ErrClerkNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get clerk by ID: %w", err)
	}

	return clerk, nil
}

func scanClerk(row *sql.Row) (*models.Clerk, error) {
	clerk := &models.Clerk{}
	err := row.Scan(
		&clerk.ID,
		&clerk.Name,
		&clerk.PasswordHash,
		&clerk.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return clerk, nil
}
