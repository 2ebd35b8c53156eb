package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/plumeworks/plume/internal/database"
	"github.com/plumeworks/plume/internal/model"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// GroupRepository defines the group storage operations the service needs
type GroupRepository interface {
	Create(ctx context.Context, group *model.Group) error
	GetBySlug(ctx context.Context, slug string) (*model.Group, error)
	Delete(ctx context.Context, id string) error
}

// GroupService manages the group catalog
type GroupService struct {
	groupRepo GroupRepository
}

// GroupServiceConfig holds configuration for the group service
type GroupServiceConfig struct {
	GroupRepo GroupRepository
}

// NewGroupService creates a new group service
func NewGroupService(cfg GroupServiceConfig) *GroupService {
	return &GroupService{groupRepo: cfg.GroupRepo}
}

// Create validates and persists a new group. Slug uniqueness is enforced by
// the storage layer's unique index, never by a read-then-write check.
func (s *GroupService) Create(ctx context.Context, req *model.CreateGroupRequest) (*model.Group, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrGroupTitleRequired
	}
	if len(title) > model.MaxGroupTitleLength {
		return nil, ErrGroupTitleTooLong
	}

	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		return nil, ErrGroupSlugRequired
	}
	if len(slug) > model.MaxGroupSlugLength {
		return nil, ErrGroupSlugTooLong
	}
	if !slugPattern.MatchString(slug) {
		return nil, ErrGroupSlugInvalid
	}

	group := &model.Group{
		Title:       title,
		Slug:        slug,
		Description: strings.TrimSpace(req.Description),
	}
	if err := s.groupRepo.Create(ctx, group); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrGroupSlugExists
		}
		return nil, err
	}
	return group, nil
}

// Get retrieves a group by slug
func (s *GroupService) Get(ctx context.Context, slug string) (*model.Group, error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}
	return group, nil
}

// Delete removes a group. Posts attached to it survive and are detached in
// the same atomic batch, so no post ever points at a missing group.
func (s *GroupService) Delete(ctx context.Context, slug string) error {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if group == nil {
		return ErrGroupNotFound
	}
	return s.groupRepo.Delete(ctx, group.ID)
}
