package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/plumeworks/plume/internal/model"
	"github.com/plumeworks/plume/internal/service"
)

// FeedHandler handles the public feed endpoints
type FeedHandler struct {
	feedService *service.FeedService
}

// NewFeedHandler creates a new feed handler
func NewFeedHandler(feedService *service.FeedService) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

// UserSummary is the public view of an author. Email and role stay private.
type UserSummary struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Firstname *string `json:"firstname,omitempty"`
	Lastname  *string `json:"lastname,omitempty"`
}

func toUserSummary(user *model.User) UserSummary {
	return UserSummary{
		ID:        user.ID,
		Username:  user.Username,
		Firstname: user.Firstname,
		Lastname:  user.Lastname,
	}
}

// GroupFeedData carries a group feed page alongside the group itself
type GroupFeedData struct {
	Group *model.Group  `json:"group"`
	Posts []*model.Post `json:"posts"`
}

// AuthorFeedData carries an author feed page alongside the author and
// their total post count
type AuthorFeedData struct {
	Author    UserSummary   `json:"author"`
	PostCount int           `json:"post_count"`
	Posts     []*model.Post `json:"posts"`
}

// parsePage reads the page query parameter. Anything unparseable lands on
// the first page; the feed service clamps the rest.
func parsePage(r *http.Request) int {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return page
}

func toPageInfo(page *model.PostPage) *PageInfo {
	return &PageInfo{
		Number:      page.Number,
		PageCount:   page.PageCount,
		HasNext:     page.HasNext,
		HasPrevious: page.HasPrevious,
	}
}

func feedLinks(base string, page *model.PostPage) map[string]string {
	links := map[string]string{
		"self": fmt.Sprintf("%s?page=%d", base, page.Number),
	}
	if page.HasNext {
		links["next"] = fmt.Sprintf("%s?page=%d", base, page.Number+1)
	}
	if page.HasPrevious {
		links["prev"] = fmt.Sprintf("%s?page=%d", base, page.Number-1)
	}
	return links
}

// Home handles GET /v1/posts
func (h *FeedHandler) Home(w http.ResponseWriter, r *http.Request) {
	page, err := h.feedService.Home(r.Context(), parsePage(r))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteFeed(w, page.Items, toPageInfo(page), feedLinks("/v1/posts", page))
}

// Group handles GET /v1/groups/{slug}/posts
func (h *FeedHandler) Group(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	page, group, err := h.feedService.Group(r.Context(), slug, parsePage(r))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	data := GroupFeedData{Group: group, Posts: page.Items}
	WriteFeed(w, data, toPageInfo(page), feedLinks("/v1/groups/"+slug+"/posts", page))
}

// Author handles GET /v1/users/{username}/posts
func (h *FeedHandler) Author(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")

	page, author, postCount, err := h.feedService.Author(r.Context(), username, parsePage(r))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	data := AuthorFeedData{
		Author:    toUserSummary(author),
		PostCount: postCount,
		Posts:     page.Items,
	}
	WriteFeed(w, data, toPageInfo(page), feedLinks("/v1/users/"+username+"/posts", page))
}
