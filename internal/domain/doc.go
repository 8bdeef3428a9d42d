// Package domain defines the address book's data model, error taxonomy and
// the contracts between the manager and its stores.
// It contains plain types and interfaces only.
package domain
