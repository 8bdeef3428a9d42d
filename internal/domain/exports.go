package domain

import (
	interfaces "addressbook/internal/domain/interfaces"
	types "addressbook/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Contact         = types.Contact
	ContactUpdate   = types.ContactUpdate
	ContactField    = types.ContactField
	AddressBook     = types.AddressBook
	Catalog         = types.Catalog
	SortField       = types.SortField
	ImportReport    = types.ImportReport
	ImportRejection = types.ImportRejection
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	CatalogStore       = interfaces.CatalogStore
	ContactListStore   = interfaces.ContactListStore
	AddressBookService = interfaces.AddressBookService
)

// Re-exported constants.
const (
	FieldFirstName = types.FieldFirstName
	FieldLastName  = types.FieldLastName
	FieldAddress   = types.FieldAddress
	FieldCity      = types.FieldCity
	FieldState     = types.FieldState
	FieldZip       = types.FieldZip
	FieldPhone     = types.FieldPhone
	FieldEmail     = types.FieldEmail

	SortByFirstName = types.SortByFirstName
	SortByLastName  = types.SortByLastName
	SortByCity      = types.SortByCity
	SortByState     = types.SortByState
	SortByZip       = types.SortByZip
	SortByPhone     = types.SortByPhone
	SortByEmail     = types.SortByEmail
)

// SortFields lists every accepted sort field.
var SortFields = types.SortFields
