// Package service implements the business logic of Plume.
//
// Services sit between handlers and repositories: they validate input,
// enforce authorship, and translate repository results into domain errors.
// Repository dependencies are declared as small interfaces local to this
// package, so services are tested against hand-rolled mocks without a
// running database.
//
// All errors returned by service methods are sentinel values defined in
// errors.go; handlers match them with errors.Is and map them to HTTP
// problem responses in one place.
package service
