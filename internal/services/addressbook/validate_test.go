package addressbook_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"addressbook/internal/domain"
	"addressbook/internal/services/addressbook"
)

func validContact() domain.Contact {
	return domain.Contact{
		FirstName: "John",
		LastName:  "Doe",
		Address:   "123 Main St",
		City:      "New York",
		State:     "New York",
		Zip:       "10001",
		Phone:     "9876543210",
		Email:     "john.doe@example.com",
	}
}

func TestValidateContact_Valid(t *testing.T) {
	valid := []func(*domain.Contact){
		func(c *domain.Contact) {},
		func(c *domain.Contact) { c.State = "Delhi" },
		func(c *domain.Contact) { c.Zip = "462022" },
		func(c *domain.Contact) { c.Phone = "6000000000" },
		func(c *domain.Contact) { c.Email = "a.b_c%d+e-f@sub.example.co.in" },
		func(c *domain.Contact) { c.FirstName = "Abc" },
		func(c *domain.Contact) { c.LastName = "McDonald" },
		func(c *domain.Contact) { c.Address = "    " },
	}
	for i, mutate := range valid {
		c := validContact()
		mutate(&c)
		assert.NoError(t, addressbook.ValidateContact(c), "case %d: %+v", i, c)
	}
}

func TestValidateContact_EachFieldRejected(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Contact)
		field  domain.ContactField
		want   error
	}{
		{"lowercase first", func(c *domain.Contact) { c.FirstName = "bob" }, domain.FieldFirstName, domain.ErrInvalidFirstName},
		{"short first", func(c *domain.Contact) { c.FirstName = "Jo" }, domain.FieldFirstName, domain.ErrInvalidFirstName},
		{"digit in last", func(c *domain.Contact) { c.LastName = "Do3" }, domain.FieldLastName, domain.ErrInvalidLastName},
		{"short address", func(c *domain.Contact) { c.Address = "1 A" }, domain.FieldAddress, domain.ErrInvalidAddress},
		{"short city", func(c *domain.Contact) { c.City = "NYC" }, domain.FieldCity, domain.ErrInvalidCity},
		{"short state", func(c *domain.Contact) { c.State = "NY" }, domain.FieldState, domain.ErrInvalidState},
		{"short zip", func(c *domain.Contact) { c.Zip = "123" }, domain.FieldZip, domain.ErrInvalidZip},
		{"long zip", func(c *domain.Contact) { c.Zip = "1234567" }, domain.FieldZip, domain.ErrInvalidZip},
		{"alpha zip", func(c *domain.Contact) { c.Zip = "12a45" }, domain.FieldZip, domain.ErrInvalidZip},
		{"phone starts with 5", func(c *domain.Contact) { c.Phone = "5876543210" }, domain.FieldPhone, domain.ErrInvalidPhone},
		{"phone too short", func(c *domain.Contact) { c.Phone = "325012378" }, domain.FieldPhone, domain.ErrInvalidPhone},
		{"email no at", func(c *domain.Contact) { c.Email = "john.example.com" }, domain.FieldEmail, domain.ErrInvalidEmail},
		{"email short tld", func(c *domain.Contact) { c.Email = "john@example.c" }, domain.FieldEmail, domain.ErrInvalidEmail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validContact()
				tt.mutate(&c)

			err := addressbook.ValidateContact(c)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)

			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
			assert.True(t, domain.IsReported(err))
		})
	}
}

func TestValidateContact_FirstFailureWins(t *testing.T) {
	c := domain.Contact{FirstName: "bob", Zip: "1", Email: "bad"}
	err := addressbook.ValidateContact(c)
	assert.True(t, errors.Is(err, domain.ErrInvalidFirstName))

	c.FirstName = "Bob"
	err = addressbook.ValidateContact(c)
	assert.True(t, errors.Is(err, domain.ErrInvalidLastName))
}
