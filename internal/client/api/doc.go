// Package api is the client side of the marketplace REST contract.
//
// # Overview
//
// Client lists one method per resource/verb pair (users, listings, cart,
// wishlist, comments). HTTPClient implements it over net/http: JSON bodies,
// multipart for listing creation, a fixed configurable base URL and a
// per-request timeout. Calls are never retried; callers decide.
//
// # Error Handling
//
// A response with a non-success status becomes an *APIError carrying the
// server's {"error": "..."} message, or a generic message derived from the
// status. A request that could not complete (dial failure, timeout, body
// that cannot be decoded) becomes a *NetworkError. Both can be matched with
// errors.Is against ErrUnavailable, ErrUnauthorized, ErrForbidden,
// ErrNotFound and ErrConflict.
package api
