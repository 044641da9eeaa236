package service

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/aidar/teams/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type memStore struct {
	seq        int64
	users      map[int64]*domain.User
	teams      map[int64]*domain.Team
	statuses   []*domain.TeamStatus
	ownerships []*domain.Ownership
}

func newMemStore() *memStore {
	return &memStore{
		users: make(map[int64]*domain.User),
		teams: make(map[int64]*domain.Team),
	}
}

func (m *memStore) nextID() int64 {
	m.seq++
	return m.seq
}

type memUserRepository struct{ *memStore }

func (r memUserRepository) Create(ctx context.Context, user *domain.User) error {
	user.ID = r.nextID()
	user.CreatedAt = time.Now()
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r memUserRepository) GetByID(ctx context.Context, userID int64) (*domain.User, error) {
	user, ok := r.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

type memTeamRepository struct{ *memStore }

func (r memTeamRepository) Create(ctx context.Context, team *domain.Team) error {
	team.ID = r.nextID()
	team.CreatedAt = time.Now()
	copied := *team
	r.teams[team.ID] = &copied
	return nil
}

func (r memTeamRepository) GetByID(ctx context.Context, teamID int64) (*domain.Team, error) {
	team, ok := r.teams[teamID]
	if !ok {
		return nil, domain.ErrTeamNotFound
	}
	copied := *team
	return &copied, nil
}

func (r memTeamRepository) List(ctx context.Context) ([]*domain.Team, error) {
	teams := make([]*domain.Team, 0, len(r.teams))
	for _, team := range r.teams {
		copied := *team
		teams = append(teams, &copied)
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].ID < teams[j].ID })
	return teams, nil
}

func (r memTeamRepository) Count(ctx context.Context) (int, error) {
	return len(r.teams), nil
}

type memStatusRepository struct{ *memStore }

func (r memStatusRepository) Create(ctx context.Context, status *domain.TeamStatus) error {
	if _, ok := r.teams[status.TeamID]; !ok {
		return domain.ErrTeamNotFound
	}
	if _, ok := r.users[status.UserID]; !ok {
		return domain.ErrUserNotFound
	}
	status.ID = r.nextID()
	status.CreatedAt = time.Now()
	copied := *status
	r.statuses = append(r.statuses, &copied)
	return nil
}

func (r memStatusRepository) latest(teamID, userID int64) *domain.TeamStatus {
	var found *domain.TeamStatus
	for _, status := range r.statuses {
		if status.TeamID == teamID && status.UserID == userID {
			if found == nil || status.ID > found.ID {
				found = status
			}
		}
	}
	return found
}

func (r memStatusRepository) Current(ctx context.Context, teamID, userID int64) (*domain.TeamStatus, error) {
	status := r.latest(teamID, userID)
	if status == nil {
		return nil, domain.ErrStatusNotFound
	}
	copied := *status
	return &copied, nil
}

func (r memStatusRepository) History(ctx context.Context, teamID, userID int64) ([]*domain.TeamStatus, error) {
	var history []*domain.TeamStatus
	for i := len(r.statuses) - 1; i >= 0; i-- {
		status := r.statuses[i]
		if status.TeamID == teamID && status.UserID == userID {
			copied := *status
			history = append(history, &copied)
		}
	}
	return history, nil
}

func (r memStatusRepository) SetCurrentRole(ctx context.Context, teamID, userID int64, role domain.Role) (*domain.TeamStatus, error) {
	status := r.latest(teamID, userID)
	if status == nil {
		return nil, domain.ErrStatusNotFound
	}
	status.Role = role
	copied := *status
	return &copied, nil
}

func (r memStatusRepository) UpdateRole(ctx context.Context, statusID int64, role domain.Role) error {
	for _, status := range r.statuses {
		if status.ID == statusID {
			status.Role = role
			return nil
		}
	}
	return domain.ErrStatusNotFound
}

func (r memStatusRepository) CountByTeam(ctx context.Context, teamID int64) (int, error) {
	count := 0
	for _, status := range r.statuses {
		if status.TeamID == teamID {
			count++
		}
	}
	return count, nil
}

func (r memStatusRepository) CountByTeamUser(ctx context.Context, teamID, userID int64) (int, error) {
	count := 0
	for _, status := range r.statuses {
		if status.TeamID == teamID && status.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (r memStatusRepository) MembersByRole(ctx context.Context, teamID int64, role domain.Role) ([]*domain.User, error) {
	return r.collectUsers(teamID, func(status *domain.TeamStatus) bool {
		return role == 0 || status.Role == role
	}), nil
}

func (r memStatusRepository) CurrentMembersByRole(ctx context.Context, teamID int64, role domain.Role) ([]*domain.User, error) {
	return r.collectUsers(teamID, func(status *domain.TeamStatus) bool {
		current := r.latest(teamID, status.UserID)
		return status.ID == current.ID && (role == 0 || current.Role == role)
	}), nil
}

func (r memStatusRepository) collectUsers(teamID int64, match func(*domain.TeamStatus) bool) []*domain.User {
	seen := make(map[int64]bool)
	var users []*domain.User
	for _, status := range r.statuses {
		if status.TeamID != teamID || seen[status.UserID] || !match(status) {
			continue
		}
		seen[status.UserID] = true
		copied := *r.users[status.UserID]
		users = append(users, &copied)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users
}

type memOwnershipRepository struct{ *memStore }

func (r memOwnershipRepository) Create(ctx context.Context, ownership *domain.Ownership) error {
	if _, ok := r.teams[ownership.TeamID]; !ok {
		return domain.ErrTeamNotFound
	}
	ownership.ID = r.nextID()
	ownership.CreatedAt = time.Now()
	copied := *ownership
	r.ownerships = append(r.ownerships, &copied)
	return nil
}

func (r memOwnershipRepository) GetByID(ctx context.Context, ownershipID int64) (*domain.Ownership, error) {
	for _, ownership := range r.ownerships {
		if ownership.ID == ownershipID {
			copied := *ownership
			return &copied, nil
		}
	}
	return nil, domain.ErrOwnershipNotFound
}

func (r memOwnershipRepository) List(ctx context.Context, filter domain.OwnershipFilter) ([]*domain.Ownership, error) {
	var result []*domain.Ownership
	for _, ownership := range r.ownerships {
		if filter.TeamID != 0 && ownership.TeamID != filter.TeamID {
			continue
		}
		if filter.ObjectType != "" && ownership.Object.Type != filter.ObjectType {
			continue
		}
		if filter.Approved != nil && ownership.Approved != *filter.Approved {
			continue
		}
		copied := *ownership
		result = append(result, &copied)
	}
	return result, nil
}

func (r memOwnershipRepository) ObjectTypes(ctx context.Context, teamID int64) ([]string, error) {
	seen := make(map[string]bool)
	var types []string
	for _, ownership := range r.ownerships {
		if ownership.TeamID == teamID && !seen[ownership.Object.Type] {
			seen[ownership.Object.Type] = true
			types = append(types, ownership.Object.Type)
		}
	}
	sort.Strings(types)
	return types, nil
}

func (r memOwnershipRepository) SetApproved(ctx context.Context, ownershipID int64, approved bool) error {
	for _, ownership := range r.ownerships {
		if ownership.ID == ownershipID {
			ownership.Approved = approved
			return nil
		}
	}
	return domain.ErrOwnershipNotFound
}

func (r memOwnershipRepository) Delete(ctx context.Context, ownershipID int64) error {
	for i, ownership := range r.ownerships {
		if ownership.ID == ownershipID {
			r.ownerships = append(r.ownerships[:i], r.ownerships[i+1:]...)
			return nil
		}
	}
	return domain.ErrOwnershipNotFound
}
