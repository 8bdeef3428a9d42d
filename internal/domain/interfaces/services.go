package interfaces

import domaintypes "addressbook/internal/domain/types"

// AddressBookService manages named address books held in memory and
// written through to a CatalogStore after every mutation.
type AddressBookService interface {
	CreateBook(name string) (bool, error)
	Books() []string

	ValidateContact(contact domaintypes.Contact) error
	AddContact(book string, contact domaintypes.Contact) error
	ViewContacts(book string) ([]domaintypes.Contact, error)
	EditContact(book, firstName, lastName string, update domaintypes.ContactUpdate) error
	DeleteContact(book, firstName, lastName string) error
	DeleteContactAt(book string, index int) error
	CountContacts(book string) int

	SearchByCityOrState(term string) []domaintypes.Contact
	SortContacts(book string, field domaintypes.SortField) error

	ImportContacts(book string, contacts []domaintypes.Contact) (domaintypes.ImportReport, error)
}
