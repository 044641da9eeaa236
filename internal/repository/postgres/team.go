package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/teams/internal/domain"
)

// TeamRepository реализует repository.TeamRepository для PostgreSQL
type TeamRepository struct {
	db *pgxpool.Pool
}

// NewTeamRepository создает новый экземпляр TeamRepository
func NewTeamRepository(db *pgxpool.Pool) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create создает новую команду
func (r *TeamRepository) Create(ctx context.Context, team *domain.Team) error {
	query := `INSERT INTO teams (name) VALUES ($1) RETURNING id, created_at`

	return r.db.QueryRow(ctx, query, team.Name).Scan(&team.ID, &team.CreatedAt)
}

// GetByID получает команду по ID
func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (*domain.Team, error) {
	query := `SELECT id, name, created_at FROM teams WHERE id = $1`

	var team domain.Team
	err := r.db.QueryRow(ctx, query, teamID).Scan(&team.ID, &team.Name, &team.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTeamNotFound
		}
		return nil, err
	}

	return &team, nil
}

// List возвращает все команды
func (r *TeamRepository) List(ctx context.Context) ([]*domain.Team, error) {
	query := `SELECT id, name, created_at FROM teams ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []*domain.Team
	for rows.Next() {
		var team domain.Team
		if err := rows.Scan(&team.ID, &team.Name, &team.CreatedAt); err != nil {
			return nil, err
		}
		teams = append(teams, &team)
	}

	return teams, rows.Err()
}

// Count возвращает количество команд
func (r *TeamRepository) Count(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM teams`

	var count int
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}
