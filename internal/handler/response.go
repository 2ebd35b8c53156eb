package handler

import (
	"encoding/json"
	"net/http"

	"github.com/plumeworks/plume/internal/model"
)

// DataResponse wraps a successful response with optional HATEOAS links
type DataResponse struct {
	Data  interface{}       `json:"data"`
	Links map[string]string `json:"_links,omitempty"`
}

// FeedResponse wraps one page of a feed
type FeedResponse struct {
	Data  interface{}       `json:"data"`
	Page  *PageInfo         `json:"page"`
	Links map[string]string `json:"_links,omitempty"`
}

// PageInfo describes the position of a feed page
type PageInfo struct {
	Number      int  `json:"number"`
	PageCount   int  `json:"page_count"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteData writes a successful data response
func WriteData(w http.ResponseWriter, status int, data interface{}, links map[string]string) {
	WriteJSON(w, status, DataResponse{
		Data:  data,
		Links: links,
	})
}

// WriteFeed writes one page of a feed with navigation info
func WriteFeed(w http.ResponseWriter, data interface{}, page *PageInfo, links map[string]string) {
	WriteJSON(w, http.StatusOK, FeedResponse{
		Data:  data,
		Page:  page,
		Links: links,
	})
}

// WriteError writes an error response using RFC 9457 Problem Details
func WriteError(w http.ResponseWriter, err *model.ProblemDetails) {
	err.WriteJSON(w)
}

// DecodeJSON decodes a JSON request body into the given struct
func DecodeJSON(r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

// WriteNoContent writes a 204 No Content response
func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
