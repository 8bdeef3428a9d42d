package addressbook

import (
	"regexp"
	"unicode/utf8"

	"addressbook/internal/domain"
)

// minPlaceLength is the minimum rune count for address, city and state.
const minPlaceLength = 4

var (
	namePattern  = regexp.MustCompile(`^[A-Z][a-zA-Z]{2,}$`)
	zipPattern   = regexp.MustCompile(`^\d{5,6}$`)
	phonePattern = regexp.MustCompile(`^[6-9]\d{9}$`) // Indian mobile numbers
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

type fieldRule struct {
	field domain.ContactField
	err   error
	get   func(domain.Contact) string
	ok    func(string) bool
}

func longEnough(v string) bool { return utf8.RuneCountInString(v) >= minPlaceLength }

// rules run in order; the first failure wins.
var rules = []fieldRule{
	{domain.FieldFirstName, domain.ErrInvalidFirstName, func(c domain.Contact) string { return c.FirstName }, namePattern.MatchString},
	{domain.FieldLastName, domain.ErrInvalidLastName, func(c domain.Contact) string { return c.LastName }, namePattern.MatchString},
	{domain.FieldAddress, domain.ErrInvalidAddress, func(c domain.Contact) string { return c.Address }, longEnough},
	{domain.FieldCity, domain.ErrInvalidCity, func(c domain.Contact) string { return c.City }, longEnough},
	{domain.FieldState, domain.ErrInvalidState, func(c domain.Contact) string { return c.State }, longEnough},
	{domain.FieldZip, domain.ErrInvalidZip, func(c domain.Contact) string { return c.Zip }, zipPattern.MatchString},
	{domain.FieldPhone, domain.ErrInvalidPhone, func(c domain.Contact) string { return c.Phone }, phonePattern.MatchString},
	{domain.FieldEmail, domain.ErrInvalidEmail, func(c domain.Contact) string { return c.Email }, emailPattern.MatchString},
}

// ValidateContact checks c field by field and returns a
// *domain.ValidationError for the first field that fails its rule.
func ValidateContact(c domain.Contact) error {
	for _, r := range rules {
		if v := r.get(c); !r.ok(v) {
			return &domain.ValidationError{Field: r.field, Value: v, Err: r.err}
		}
	}
	return nil
}
