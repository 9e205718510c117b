// Package services contains the business rules of the reference server.
// Handlers translate HTTP to these calls; repositories are reached only
// through a repomanager.RepositoryManager bound to either the pool or a
// transaction.
package services
