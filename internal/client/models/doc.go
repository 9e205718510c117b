// Package models defines the client-side projections of marketplace
// entities (users, listings, cart and wishlist entries, comments) and the
// request payloads the client sends for them.
//
// Projections are transient copies of server-owned data: the client never
// treats them as authoritative.
package models
