package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/aidar/teams/internal/domain"
	"github.com/aidar/teams/internal/repository"
)

// TeamService handles business logic for teams and memberships
type TeamService struct {
	teamRepo      repository.TeamRepository
	statusRepo    repository.TeamStatusRepository
	ownershipRepo repository.OwnershipRepository
	logger        *slog.Logger
}

// NewTeamService creates a new TeamService
func NewTeamService(
	teamRepo repository.TeamRepository,
	statusRepo repository.TeamStatusRepository,
	ownershipRepo repository.OwnershipRepository,
	logger *slog.Logger,
) *TeamService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TeamService{
		teamRepo:      teamRepo,
		statusRepo:    statusRepo,
		ownershipRepo: ownershipRepo,
		logger:        logger,
	}
}

// CreateTeam persists a new team
func (s *TeamService) CreateTeam(ctx context.Context, name string) (*domain.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidTeamName
	}

	team := &domain.Team{Name: name}
	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, err
	}

	s.logger.Info("team created", "team_id", team.ID, "name", team.Name)
	return team, nil
}

// GetTeam retrieves a team by ID
func (s *TeamService) GetTeam(ctx context.Context, teamID int64) (*domain.Team, error) {
	return s.teamRepo.GetByID(ctx, teamID)
}

// ListTeams returns all teams
func (s *TeamService) ListTeams(ctx context.Context) ([]*domain.Team, error) {
	return s.teamRepo.List(ctx)
}

// CountTeams returns the number of teams
func (s *TeamService) CountTeams(ctx context.Context) (int, error) {
	return s.teamRepo.Count(ctx)
}

// AddUser appends a membership record for the user.
// A zero role means RolePending. Existing records are kept as history.
func (s *TeamService) AddUser(ctx context.Context, teamID, userID int64, role domain.Role) (*domain.TeamStatus, error) {
	if role == 0 {
		role = domain.RolePending
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	status := &domain.TeamStatus{
		TeamID: teamID,
		UserID: userID,
		Role:   role,
	}
	if err := s.statusRepo.Create(ctx, status); err != nil {
		return nil, err
	}

	s.logger.Info("user added to team", "team_id", teamID, "user_id", userID, "role", role.String())
	return status, nil
}

// ApproveUser promotes the user's current membership record to RoleMember.
// Returns domain.ErrStatusNotFound if the user was never added to the team.
func (s *TeamService) ApproveUser(ctx context.Context, teamID, userID int64) (*domain.TeamStatus, error) {
	return s.SetUserRole(ctx, teamID, userID, domain.RoleMember)
}

// SetUserRole changes the role on the user's current membership record
func (s *TeamService) SetUserRole(ctx context.Context, teamID, userID int64, role domain.Role) (*domain.TeamStatus, error) {
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	status, err := s.statusRepo.SetCurrentRole(ctx, teamID, userID, role)
	if err != nil {
		return nil, err
	}

	s.logger.Info("team role updated", "team_id", teamID, "user_id", userID, "role", role.String())
	return status, nil
}

// ApproveStatus approves the given record in place and persists it
func (s *TeamService) ApproveStatus(ctx context.Context, status *domain.TeamStatus) error {
	status.Approve()
	if err := s.statusRepo.UpdateRole(ctx, status.ID, status.Role); err != nil {
		return err
	}

	s.logger.Info("team status approved", "status_id", status.ID, "team_id", status.TeamID, "user_id", status.UserID)
	return nil
}

// CurrentStatus returns the newest membership record for the user
func (s *TeamService) CurrentStatus(ctx context.Context, teamID, userID int64) (*domain.TeamStatus, error) {
	return s.statusRepo.Current(ctx, teamID, userID)
}

// StatusHistory returns every membership record for the user, newest first
func (s *TeamService) StatusHistory(ctx context.Context, teamID, userID int64) ([]*domain.TeamStatus, error) {
	return s.statusRepo.History(ctx, teamID, userID)
}

// MembershipCount returns the number of membership records of the team
func (s *TeamService) MembershipCount(ctx context.Context, teamID int64) (int, error) {
	return s.statusRepo.CountByTeam(ctx, teamID)
}

// Members returns users having any membership record with role (zero role returns everyone).
// Older history records count too; see CurrentMembers.
func (s *TeamService) Members(ctx context.Context, teamID int64, role domain.Role) ([]*domain.User, error) {
	if role != 0 && !role.Valid() {
		return nil, domain.ErrInvalidRole
	}
	return s.statusRepo.MembersByRole(ctx, teamID, role)
}

// CurrentMembers returns users whose current role matches role
func (s *TeamService) CurrentMembers(ctx context.Context, teamID int64, role domain.Role) ([]*domain.User, error) {
	if role != 0 && !role.Valid() {
		return nil, domain.ErrInvalidRole
	}
	return s.statusRepo.CurrentMembersByRole(ctx, teamID, role)
}

// Owners returns users added to the team with RoleOwner
func (s *TeamService) Owners(ctx context.Context, teamID int64) ([]*domain.User, error) {
	return s.Members(ctx, teamID, domain.RoleOwner)
}

// ApprovedObjects returns the team's ownership records with approved = true
func (s *TeamService) ApprovedObjects(ctx context.Context, teamID int64) ([]*domain.Ownership, error) {
	approved := true
	return s.ownershipRepo.List(ctx, domain.OwnershipFilter{
		TeamID:   teamID,
		Approved: &approved,
	})
}
