package handler

import (
	"net/http"

	"github.com/plumeworks/plume/internal/model"
	"github.com/plumeworks/plume/internal/service"
)

// GroupHandler handles the group catalog endpoints
type GroupHandler struct {
	groupService *service.GroupService
}

// NewGroupHandler creates a new group handler
func NewGroupHandler(groupService *service.GroupService) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

// Create handles POST /v1/groups (admin)
func (h *GroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateGroupRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	group, err := h.groupService.Create(r.Context(), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, group, map[string]string{
		"self":  "/v1/groups/" + group.Slug,
		"posts": "/v1/groups/" + group.Slug + "/posts",
	})
}

// Get handles GET /v1/groups/{slug}
func (h *GroupHandler) Get(w http.ResponseWriter, r *http.Request) {
	group, err := h.groupService.Get(r.Context(), r.PathValue("slug"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, group, map[string]string{
		"self":  "/v1/groups/" + group.Slug,
		"posts": "/v1/groups/" + group.Slug + "/posts",
	})
}

// Delete handles DELETE /v1/groups/{slug} (admin). The group's posts
// survive with their group cleared.
func (h *GroupHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.groupService.Delete(r.Context(), r.PathValue("slug")); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}
