// Package handler provides HTTP request handlers for the Plume API.
//
// Each handler struct encapsulates the services needed to serve requests
// for one feature area (feeds, posts, groups, authentication).
//
// # Handler Pattern
//
// All handlers follow a consistent pattern:
//
//   - Constructor function (NewXxxHandler) accepts the services it needs
//   - Methods handle specific HTTP endpoints
//   - Response helpers from response.go standardize output format
//   - Service errors are mapped to RFC 9457 Problem Details in error_mapper.go
//
// # Response Format
//
// Handlers use standardized response functions:
//
//   - WriteData: single resource with optional HATEOAS links
//   - WriteFeed: one page of a feed with page navigation info
//   - WriteError: RFC 9457 Problem Details error response
//
// One deliberate exception: a denied post edit answers with 303 See Other
// and a Location header pointing at the post's read-only detail view,
// instead of a 403. See PostHandler.Edit.
package handler
