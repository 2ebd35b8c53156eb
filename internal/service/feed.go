package service

import (
	"context"

	"github.com/plumeworks/plume/internal/model"
)

// FeedPostRepository defines the post storage operations feeds need
type FeedPostRepository interface {
	List(ctx context.Context, scope model.PostScope, order model.PostOrder, offset, limit int) ([]*model.Post, error)
	Count(ctx context.Context, scope model.PostScope) (int, error)
}

// FeedGroupRepository defines the group lookup feeds need
type FeedGroupRepository interface {
	GetBySlug(ctx context.Context, slug string) (*model.Group, error)
}

// FeedUserRepository defines the user lookup feeds need
type FeedUserRepository interface {
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}

// FeedService assembles paginated post feeds
type FeedService struct {
	postRepo  FeedPostRepository
	groupRepo FeedGroupRepository
	userRepo  FeedUserRepository
}

// FeedServiceConfig holds configuration for the feed service
type FeedServiceConfig struct {
	PostRepo  FeedPostRepository
	GroupRepo FeedGroupRepository
	UserRepo  FeedUserRepository
}

// NewFeedService creates a new feed service
func NewFeedService(cfg FeedServiceConfig) *FeedService {
	return &FeedService{
		postRepo:  cfg.PostRepo,
		groupRepo: cfg.GroupRepo,
		userRepo:  cfg.UserRepo,
	}
}

// Home returns one page of the site-wide feed
func (s *FeedService) Home(ctx context.Context, page int) (*model.PostPage, error) {
	result, _, err := s.assemble(ctx, model.PostScope{}, page)
	return result, err
}

// Group returns one page of a group's feed along with the group itself.
// An unknown slug fails before any pagination happens.
func (s *FeedService) Group(ctx context.Context, slug string, page int) (*model.PostPage, *model.Group, error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}
	if group == nil {
		return nil, nil, ErrGroupNotFound
	}

	result, _, err := s.assemble(ctx, model.PostScope{GroupID: group.ID}, page)
	if err != nil {
		return nil, nil, err
	}
	return result, group, nil
}

// Author returns one page of a user's feed along with the author and their
// total post count. The count covers every post by the author, not just the
// current page window.
func (s *FeedService) Author(ctx context.Context, username string, page int) (*model.PostPage, *model.User, int, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, nil, 0, err
	}
	if author == nil {
		return nil, nil, 0, ErrUserNotFound
	}

	result, total, err := s.assemble(ctx, model.PostScope{AuthorID: author.ID}, page)
	if err != nil {
		return nil, nil, 0, err
	}
	return result, author, total, nil
}

// assemble turns a scope and a requested page number into a bounded page.
// Out-of-range page numbers are clamped to the nearest valid page instead
// of failing: below range lands on the first page, beyond range on the
// last. A feed request never fails because of its page parameter.
func (s *FeedService) assemble(ctx context.Context, scope model.PostScope, page int) (*model.PostPage, int, error) {
	total, err := s.postRepo.Count(ctx, scope)
	if err != nil {
		return nil, 0, err
	}

	pageCount := (total + model.PageSize - 1) / model.PageSize
	if pageCount < 1 {
		pageCount = 1
	}

	if page < 1 {
		page = 1
	}
	if page > pageCount {
		page = pageCount
	}

	items, err := s.postRepo.List(ctx, scope, model.OrderNewestFirst, (page-1)*model.PageSize, model.PageSize)
	if err != nil {
		return nil, 0, err
	}

	return &model.PostPage{
		Items:       items,
		Number:      page,
		PageCount:   pageCount,
		HasNext:     page < pageCount,
		HasPrevious: page > 1,
	}, total, nil
}
