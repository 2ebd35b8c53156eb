package handler

import (
	"net/http"

	"github.com/plumeworks/plume/internal/middleware"
	"github.com/plumeworks/plume/internal/model"
	"github.com/plumeworks/plume/internal/service"
)

// PostHandler handles post detail and mutation endpoints
type PostHandler struct {
	postService *service.PostService
}

// NewPostHandler creates a new post handler
func NewPostHandler(postService *service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// Get handles GET /v1/posts/{postId}
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	post, err := h.postService.Get(r.Context(), r.PathValue("postId"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, post, map[string]string{
		"self": "/v1/posts/" + post.ID,
	})
}

// Create handles POST /v1/posts
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreatePostRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	identity := middleware.GetIdentity(r.Context())
	post, err := h.postService.Create(r.Context(), identity, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, post, map[string]string{
		"self":        "/v1/posts/" + post.ID,
		"author_feed": "/v1/users/" + identity.Username + "/posts",
	})
}

// Edit handles PATCH /v1/posts/{postId}.
// A caller who is not the author gets 303 See Other with a Location header
// pointing at the read-only detail view, never a 403.
func (h *PostHandler) Edit(w http.ResponseWriter, r *http.Request) {
	postID := r.PathValue("postId")

	var req model.UpdatePostRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	identity := middleware.GetIdentity(r.Context())
	result, err := h.postService.Edit(r.Context(), identity, postID, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	switch result.Status {
	case service.EditDenied:
		w.Header().Set("Location", "/v1/posts/"+postID)
		w.WriteHeader(http.StatusSeeOther)
	case service.EditInvalid:
		WriteError(w, model.NewValidationError(result.Fields))
	default:
		WriteData(w, http.StatusOK, result.Post, map[string]string{
			"self": "/v1/posts/" + result.Post.ID,
		})
	}
}
