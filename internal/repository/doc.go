// Package repository implements the data access layer for Plume.
//
// Each entity gets a repository struct holding a database.Database and
// exposing CRUD-style methods that speak SurrealQL. Repositories return
// (nil, nil) for lookups that find nothing; translating that into a domain
// not-found error is the service layer's job. Unique constraint violations
// surface as database.ErrDuplicate.
package repository
