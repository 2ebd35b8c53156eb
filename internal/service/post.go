package service

import (
	"context"
	"strings"

	"github.com/plumeworks/plume/internal/model"
)

// PostRepository defines the post storage operations mutations need
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	GetByID(ctx context.Context, id string) (*model.Post, error)
	Update(ctx context.Context, id string, text string, groupID *string) (*model.Post, error)
}

// PostGroupRepository validates group references on post writes
type PostGroupRepository interface {
	GetByID(ctx context.Context, id string) (*model.Group, error)
}

// PostService orchestrates post creation and editing
type PostService struct {
	postRepo  PostRepository
	groupRepo PostGroupRepository
}

// PostServiceConfig holds configuration for the post service
type PostServiceConfig struct {
	PostRepo  PostRepository
	GroupRepo PostGroupRepository
}

// NewPostService creates a new post service
func NewPostService(cfg PostServiceConfig) *PostService {
	return &PostService{
		postRepo:  cfg.PostRepo,
		groupRepo: cfg.GroupRepo,
	}
}

// EditStatus tags the outcome of an edit attempt
type EditStatus int

const (
	// EditUpdated means the edit was applied
	EditUpdated EditStatus = iota
	// EditDenied means the caller is not the author; the handler redirects
	// to the read-only detail view instead of failing
	EditDenied
	// EditInvalid means the input failed validation; the caller returns to
	// the form with the field errors attached
	EditInvalid
)

// EditResult is the tagged outcome of Edit. Denied and Invalid are ordinary
// results, not errors; callers must handle all three branches explicitly.
type EditResult struct {
	Status EditStatus
	Post   *model.Post
	Fields []model.FieldError
}

// Get retrieves a single post
func (s *PostService) Get(ctx context.Context, id string) (*model.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// Create validates and persists a new post on behalf of the identity.
// Authentication is the transport's concern; by the time Create runs the
// identity is known to be a signed-in user.
func (s *PostService) Create(ctx context.Context, identity model.Identity, req *model.CreatePostRequest) (*model.Post, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, ErrTextRequired
	}

	groupID, err := s.resolveGroup(ctx, req.GroupID)
	if err != nil {
		return nil, err
	}

	post := &model.Post{
		Text:     req.Text,
		AuthorID: identity.UserID,
		GroupID:  groupID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Edit loads the post, consults the access gate, validates the input and
// persists the change. Author and publication date never change.
func (s *PostService) Edit(ctx context.Context, identity model.Identity, postID string, req *model.UpdatePostRequest) (*EditResult, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	if !CanEdit(identity, post) {
		return &EditResult{Status: EditDenied, Post: post}, nil
	}

	var fields []model.FieldError
	if strings.TrimSpace(req.Text) == "" {
		fields = append(fields, model.FieldError{Field: "text", Message: ErrTextRequired.Error()})
	}
	groupID, err := s.resolveGroup(ctx, req.GroupID)
	if err != nil {
		if err == ErrUnknownGroup {
			fields = append(fields, model.FieldError{Field: "group_id", Message: err.Error()})
		} else {
			return nil, err
		}
	}
	if len(fields) > 0 {
		return &EditResult{Status: EditInvalid, Post: post, Fields: fields}, nil
	}

	updated, err := s.postRepo.Update(ctx, postID, req.Text, groupID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrPostNotFound
	}
	return &EditResult{Status: EditUpdated, Post: updated}, nil
}

// resolveGroup checks an optional group reference and normalizes the
// "no group" cases to nil
func (s *PostService) resolveGroup(ctx context.Context, groupID *string) (*string, error) {
	if groupID == nil || *groupID == "" {
		return nil, nil
	}
	group, err := s.groupRepo.GetByID(ctx, *groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrUnknownGroup
	}
	return groupID, nil
}
