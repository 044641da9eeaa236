package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/teams/internal/domain"
)

// OwnershipRepository реализует repository.OwnershipRepository для PostgreSQL
type OwnershipRepository struct {
	db *pgxpool.Pool
}

// NewOwnershipRepository создает новый экземпляр OwnershipRepository
func NewOwnershipRepository(db *pgxpool.Pool) *OwnershipRepository {
	return &OwnershipRepository{db: db}
}

// Create создает запись владения
func (r *OwnershipRepository) Create(ctx context.Context, ownership *domain.Ownership) error {
	query := `
		INSERT INTO ownerships (team_id, object_type, object_id, approved)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		ownership.TeamID,
		ownership.Object.Type,
		ownership.Object.ID,
		ownership.Approved,
	).Scan(&ownership.ID, &ownership.CreatedAt)
	if err != nil {
		return mapConstraintError(err)
	}

	return nil
}

// GetByID получает запись владения по ID
func (r *OwnershipRepository) GetByID(ctx context.Context, ownershipID int64) (*domain.Ownership, error) {
	query := `
		SELECT id, team_id, object_type, object_id, approved, created_at
		FROM ownerships
		WHERE id = $1
	`

	ownership, err := scanOwnership(r.db.QueryRow(ctx, query, ownershipID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOwnershipNotFound
		}
		return nil, err
	}

	return ownership, nil
}

// List возвращает записи владения по фильтру
func (r *OwnershipRepository) List(ctx context.Context, filter domain.OwnershipFilter) ([]*domain.Ownership, error) {
	// Пустые значения фильтра отключают соответствующее условие
	query := `
		SELECT id, team_id, object_type, object_id, approved, created_at
		FROM ownerships
		WHERE ($1::bigint = 0 OR team_id = $1::bigint)
		  AND ($2::text = '' OR object_type = $2::text)
		  AND ($3::boolean IS NULL OR approved = $3::boolean)
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, filter.TeamID, filter.ObjectType, filter.Approved)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ownerships []*domain.Ownership
	for rows.Next() {
		ownership, err := scanOwnership(rows)
		if err != nil {
			return nil, err
		}
		ownerships = append(ownerships, ownership)
	}

	return ownerships, rows.Err()
}

// ObjectTypes возвращает различные типы объектов во владении команды
func (r *OwnershipRepository) ObjectTypes(ctx context.Context, teamID int64) ([]string, error) {
	query := `
		SELECT DISTINCT object_type
		FROM ownerships
		WHERE team_id = $1
		ORDER BY object_type
	`

	rows, err := r.db.Query(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []string
	for rows.Next() {
		var objectType string
		if err := rows.Scan(&objectType); err != nil {
			return nil, err
		}
		types = append(types, objectType)
	}

	return types, rows.Err()
}

// SetApproved обновляет флаг подтверждения
func (r *OwnershipRepository) SetApproved(ctx context.Context, ownershipID int64, approved bool) error {
	query := `UPDATE ownerships SET approved = $1 WHERE id = $2`

	result, err := r.db.Exec(ctx, query, approved, ownershipID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrOwnershipNotFound
	}

	return nil
}

// Delete удаляет запись владения
func (r *OwnershipRepository) Delete(ctx context.Context, ownershipID int64) error {
	query := `DELETE FROM ownerships WHERE id = $1`

	result, err := r.db.Exec(ctx, query, ownershipID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrOwnershipNotFound
	}

	return nil
}

func scanOwnership(row pgx.Row) (*domain.Ownership, error) {
	var ownership domain.Ownership
	err := row.Scan(
		&ownership.ID,
		&ownership.TeamID,
		&ownership.Object.Type,
		&ownership.Object.ID,
		&ownership.Approved,
		&ownership.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &ownership, nil
}
