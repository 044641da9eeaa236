package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/teams/internal/domain"
)

// TeamStats represents membership and ownership counters of a team.
// Membership counters use each user's current status only.
type TeamStats struct {
	TeamID             int64  `json:"team_id"`
	Name               string `json:"name"`
	PendingUsers       int    `json:"pending_users"`
	Members            int    `json:"members"`
	Owners             int    `json:"owners"`
	Ownerships         int    `json:"ownerships"`
	ApprovedOwnerships int    `json:"approved_ownerships"`
}

// StatsService handles statistics queries
type StatsService struct {
	db *pgxpool.Pool
}

// NewStatsService creates a new StatsService
func NewStatsService(db *pgxpool.Pool) *StatsService {
	return &StatsService{db: db}
}

const teamStatsQuery = `
	WITH latest AS (
		SELECT DISTINCT ON (team_id, user_id) team_id, user_id, role
		FROM team_statuses
		ORDER BY team_id, user_id, id DESC
	)
	SELECT
		t.id,
		t.name,
		(SELECT COUNT(*) FROM latest l WHERE l.team_id = t.id AND l.role = $1) AS pending_users,
		(SELECT COUNT(*) FROM latest l WHERE l.team_id = t.id AND l.role = $2) AS members,
		(SELECT COUNT(*) FROM latest l WHERE l.team_id = t.id AND l.role = $3) AS owners,
		(SELECT COUNT(*) FROM ownerships o WHERE o.team_id = t.id) AS ownerships,
		(SELECT COUNT(*) FROM ownerships o WHERE o.team_id = t.id AND o.approved) AS approved_ownerships
	FROM teams t
`

func roleArgs() []any {
	return []any{int16(domain.RolePending), int16(domain.RoleMember), int16(domain.RoleOwner)}
}

// GetStats returns statistics for every team
func (s *StatsService) GetStats(ctx context.Context) ([]TeamStats, error) {
	rows, err := s.db.Query(ctx, teamStatsQuery+` ORDER BY t.id`, roleArgs()...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []TeamStats
	for rows.Next() {
		ts, err := scanTeamStats(rows)
		if err != nil {
			return nil, err
		}
		stats = append(stats, *ts)
	}

	return stats, rows.Err()
}

// GetTeamStats returns statistics for a specific team
func (s *StatsService) GetTeamStats(ctx context.Context, teamID int64) (*TeamStats, error) {
	args := append(roleArgs(), teamID)

	ts, err := scanTeamStats(s.db.QueryRow(ctx, teamStatsQuery+` WHERE t.id = $4`, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTeamNotFound
		}
		return nil, err
	}

	return ts, nil
}

func scanTeamStats(row pgx.Row) (*TeamStats, error) {
	var ts TeamStats
	err := row.Scan(
		&ts.TeamID,
		&ts.Name,
		&ts.PendingUsers,
		&ts.Members,
		&ts.Owners,
		&ts.Ownerships,
		&ts.ApprovedOwnerships,
	)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}
