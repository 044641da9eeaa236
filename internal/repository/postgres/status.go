package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/teams/internal/domain"
)

// TeamStatusRepository реализует repository.TeamStatusRepository для PostgreSQL
type TeamStatusRepository struct {
	db *pgxpool.Pool
}

// NewTeamStatusRepository создает новый экземпляр TeamStatusRepository
func NewTeamStatusRepository(db *pgxpool.Pool) *TeamStatusRepository {
	return &TeamStatusRepository{db: db}
}

// Create добавляет новую запись статуса
func (r *TeamStatusRepository) Create(ctx context.Context, status *domain.TeamStatus) error {
	query := `
		INSERT INTO team_statuses (team_id, user_id, role)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, status.TeamID, status.UserID, int16(status.Role)).
		Scan(&status.ID, &status.CreatedAt)
	if err != nil {
		return mapConstraintError(err)
	}

	return nil
}

// Current возвращает последнюю запись статуса пользователя в команде
func (r *TeamStatusRepository) Current(ctx context.Context, teamID, userID int64) (*domain.TeamStatus, error) {
	query := `
		SELECT id, team_id, user_id, role, created_at
		FROM team_statuses
		WHERE team_id = $1 AND user_id = $2
		ORDER BY id DESC
		LIMIT 1
	`

	status, err := scanStatus(r.db.QueryRow(ctx, query, teamID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrStatusNotFound
		}
		return nil, err
	}

	return status, nil
}

// History возвращает все записи статуса пользователя в команде, новые первыми
func (r *TeamStatusRepository) History(ctx context.Context, teamID, userID int64) ([]*domain.TeamStatus, error) {
	query := `
		SELECT id, team_id, user_id, role, created_at
		FROM team_statuses
		WHERE team_id = $1 AND user_id = $2
		ORDER BY id DESC
	`

	rows, err := r.db.Query(ctx, query, teamID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var statuses []*domain.TeamStatus
	for rows.Next() {
		status, err := scanStatus(rows)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}

	return statuses, rows.Err()
}

// SetCurrentRole обновляет роль в последней записи одним запросом
func (r *TeamStatusRepository) SetCurrentRole(ctx context.Context, teamID, userID int64, role domain.Role) (*domain.TeamStatus, error) {
	query := `
		UPDATE team_statuses
		SET role = $3
		WHERE id = (
			SELECT id
			FROM team_statuses
			WHERE team_id = $1 AND user_id = $2
			ORDER BY id DESC
			LIMIT 1
		)
		RETURNING id, team_id, user_id, role, created_at
	`

	status, err := scanStatus(r.db.QueryRow(ctx, query, teamID, userID, int16(role)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrStatusNotFound
		}
		return nil, err
	}

	return status, nil
}

// UpdateRole обновляет роль в записи с указанным ID
func (r *TeamStatusRepository) UpdateRole(ctx context.Context, statusID int64, role domain.Role) error {
	query := `UPDATE team_statuses SET role = $1 WHERE id = $2`

	result, err := r.db.Exec(ctx, query, int16(role), statusID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrStatusNotFound
	}

	return nil
}

// CountByTeam возвращает количество записей статуса команды
func (r *TeamStatusRepository) CountByTeam(ctx context.Context, teamID int64) (int, error) {
	query := `SELECT COUNT(*) FROM team_statuses WHERE team_id = $1`

	var count int
	if err := r.db.QueryRow(ctx, query, teamID).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

// CountByTeamUser возвращает количество записей статуса пользователя в команде
func (r *TeamStatusRepository) CountByTeamUser(ctx context.Context, teamID, userID int64) (int, error) {
	query := `SELECT COUNT(*) FROM team_statuses WHERE team_id = $1 AND user_id = $2`

	var count int
	if err := r.db.QueryRow(ctx, query, teamID, userID).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

// MembersByRole возвращает пользователей, у которых есть запись статуса команды с указанной ролью
func (r *TeamStatusRepository) MembersByRole(ctx context.Context, teamID int64, role domain.Role) ([]*domain.User, error) {
	query := `
		SELECT DISTINCT u.id, u.username, u.created_at
		FROM users u
		JOIN team_statuses s ON s.user_id = u.id
		WHERE s.team_id = $1 AND ($2::smallint = 0 OR s.role = $2::smallint)
		ORDER BY u.id
	`

	return r.queryUsers(ctx, query, teamID, int16(role))
}

// CurrentMembersByRole возвращает пользователей команды по их текущей роли
func (r *TeamStatusRepository) CurrentMembersByRole(ctx context.Context, teamID int64, role domain.Role) ([]*domain.User, error) {
	// DISTINCT ON оставляет последнюю запись каждого пользователя
	query := `
		SELECT u.id, u.username, u.created_at
		FROM (
			SELECT DISTINCT ON (user_id) user_id, role
			FROM team_statuses
			WHERE team_id = $1
			ORDER BY user_id, id DESC
		) latest
		JOIN users u ON u.id = latest.user_id
		WHERE $2::smallint = 0 OR latest.role = $2::smallint
		ORDER BY u.id
	`

	return r.queryUsers(ctx, query, teamID, int16(role))
}

func (r *TeamStatusRepository) queryUsers(ctx context.Context, query string, args ...any) ([]*domain.User, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Username, &user.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, &user)
	}

	return users, rows.Err()
}

func scanStatus(row pgx.Row) (*domain.TeamStatus, error) {
	var (
		status domain.TeamStatus
		role   int16
	)
	if err := row.Scan(&status.ID, &status.TeamID, &status.UserID, &role, &status.CreatedAt); err != nil {
		return nil, err
	}
	status.Role = domain.Role(role)

	return &status, nil
}
