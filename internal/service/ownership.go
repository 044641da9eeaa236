package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aidar/teams/internal/domain"
	"github.com/aidar/teams/internal/objectref"
	"github.com/aidar/teams/internal/repository"
)

// OwnershipService handles team claims over arbitrary application objects
type OwnershipService struct {
	ownershipRepo repository.OwnershipRepository
	registry      *objectref.Registry
	logger        *slog.Logger
}

// NewOwnershipService creates a new OwnershipService
func NewOwnershipService(
	ownershipRepo repository.OwnershipRepository,
	registry *objectref.Registry,
	logger *slog.Logger,
) *OwnershipService {
	if logger == nil {
		logger = slog.Default()
	}
	return &OwnershipService{
		ownershipRepo: ownershipRepo,
		registry:      registry,
		logger:        logger,
	}
}

// GrantOwnership records an unapproved claim of the team over obj
func (s *OwnershipService) GrantOwnership(ctx context.Context, teamID int64, obj domain.Referenceable) (*domain.Ownership, error) {
	ref := obj.ObjectRef()
	if !s.registry.Registered(ref.Type) {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownObjectType, ref.Type)
	}
	if ref.ID <= 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsavedObject, ref)
	}

	ownership := &domain.Ownership{
		TeamID: teamID,
		Object: ref,
	}
	if err := s.ownershipRepo.Create(ctx, ownership); err != nil {
		return nil, err
	}

	s.logger.Info("ownership granted",
		"ownership_id", ownership.ID,
		"team_id", ownership.TeamID,
		"object", ref.String(),
	)
	return ownership, nil
}

// Create persists an ownership record as given, without consulting the registry
func (s *OwnershipService) Create(ctx context.Context, ownership *domain.Ownership) error {
	if err := s.ownershipRepo.Create(ctx, ownership); err != nil {
		return err
	}

	s.logger.Info("ownership created",
		"ownership_id", ownership.ID,
		"team_id", ownership.TeamID,
		"object", ownership.Object.String(),
		"approved", ownership.Approved,
	)
	return nil
}

// Get retrieves an ownership record by ID
func (s *OwnershipService) Get(ctx context.Context, ownershipID int64) (*domain.Ownership, error) {
	return s.ownershipRepo.GetByID(ctx, ownershipID)
}

// List returns ownership records matching the filter
func (s *OwnershipService) List(ctx context.Context, filter domain.OwnershipFilter) ([]*domain.Ownership, error) {
	return s.ownershipRepo.List(ctx, filter)
}

// Resolve loads the object an ownership record points at
func (s *OwnershipService) Resolve(ctx context.Context, ownership *domain.Ownership) (any, error) {
	return s.registry.Resolve(ctx, ownership.Object)
}

// OwnedObjects resolves every object of objectType claimed by the team
func (s *OwnershipService) OwnedObjects(ctx context.Context, teamID int64, objectType string) ([]any, error) {
	ownerships, err := s.ownershipRepo.List(ctx, domain.OwnershipFilter{
		TeamID:     teamID,
		ObjectType: objectType,
	})
	if err != nil {
		return nil, err
	}

	objects := make([]any, 0, len(ownerships))
	for _, ownership := range ownerships {
		obj, err := s.Resolve(ctx, ownership)
		if err != nil {
			return nil, err
		}
		objects = append(objects, obj)
	}

	return objects, nil
}

// OwnedTypes returns the distinct object types claimed by the team
func (s *OwnershipService) OwnedTypes(ctx context.Context, teamID int64) ([]string, error) {
	return s.ownershipRepo.ObjectTypes(ctx, teamID)
}

// SetApproved changes the approval flag of an ownership record
func (s *OwnershipService) SetApproved(ctx context.Context, ownershipID int64, approved bool) error {
	if err := s.ownershipRepo.SetApproved(ctx, ownershipID, approved); err != nil {
		return err
	}

	s.logger.Info("ownership approval changed", "ownership_id", ownershipID, "approved", approved)
	return nil
}

// Revoke deletes an ownership record
func (s *OwnershipService) Revoke(ctx context.Context, ownershipID int64) error {
	if err := s.ownershipRepo.Delete(ctx, ownershipID); err != nil {
		return err
	}

	s.logger.Info("ownership revoked", "ownership_id", ownershipID)
	return nil
}
