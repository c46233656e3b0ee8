// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/todo). This root package
// holds the sentinel errors and typed errors (ValidationError, StorageError)
// that every layer maps to and from.
package domain
