package types

// SortField names a Contact field a book may be sorted by.
type SortField string

// Sortable fields. Address is deliberately absent.
const (
	SortByFirstName SortField = "firstName"
	SortByLastName  SortField = "lastName"
	SortByCity      SortField = "city"
	SortByState     SortField = "state"
	SortByZip       SortField = "zip"
	SortByPhone     SortField = "phone"
	SortByEmail     SortField = "email"
)

// SortFields lists every accepted SortField in a stable order.
var SortFields = []SortField{
	SortByFirstName,
	SortByLastName,
	SortByCity,
	SortByState,
	SortByZip,
	SortByPhone,
	SortByEmail,
}

// String returns the field name as stored on disk.
func (f SortField) String() string { return string(f) }

// Valid reports whether f is one of SortFields.
func (f SortField) Valid() bool {
	for _, s := range SortFields {
		if f == s {
			return true
		}
	}
	return false
}

// Value returns the value of field f on c, and false for an unknown field.
func (f SortField) Value(c Contact) (string, bool) {
	switch f {
	case SortByFirstName:
		return c.FirstName, true
	case SortByLastName:
		return c.LastName, true
	case SortByCity:
		return c.City, true
	case SortByState:
		return c.State, true
	case SortByZip:
		return c.Zip, true
	case SortByPhone:
		return c.Phone, true
	case SortByEmail:
		return c.Email, true
	}
	return "", false
}
