// Package middleware provides the HTTP middleware stack for the Plume API.
//
// Middlewares compose through Chain and run in the order given. The stack
// used by the server is RequestID, Logger, Recovery, CORS, RateLimit and
// Compress, with Auth, OptionalAuth or AdminAuth applied per route.
//
// Auth middlewares resolve the caller into a model.Identity stored in the
// request context; handlers read it back with GetIdentity. Public feed
// routes use OptionalAuth so the anonymous visitor passes through with the
// zero Identity.
package middleware
