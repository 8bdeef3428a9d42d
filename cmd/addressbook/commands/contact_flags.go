package commands

import (
	"github.com/spf13/cobra"

	"addressbook/internal/domain"
)

// contactFlags binds one flag per contact field.
type contactFlags struct {
	c domain.Contact
}

func (f *contactFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.c.FirstName, "first", "", "first name")
	fs.StringVar(&f.c.LastName, "last", "", "last name")
	fs.StringVar(&f.c.Address, "address", "", "street address")
	fs.StringVar(&f.c.City, "city", "", "city")
	fs.StringVar(&f.c.State, "state", "", "state")
	fs.StringVar(&f.c.Zip, "zip", "", "5 or 6 digit zip")
	fs.StringVar(&f.c.Phone, "phone", "", "10 digit mobile number")
	fs.StringVar(&f.c.Email, "email", "", "email address")
}

// update returns a ContactUpdate holding only the flags the user set.
func (f *contactFlags) update(cmd *cobra.Command) domain.ContactUpdate {
	fs := cmd.Flags()
	pick := func(name string, v *string) *string {
		if !fs.Changed(name) {
			return nil
		}
		s := *v
		return &s
	}
	return domain.ContactUpdate{
		FirstName: pick("first", &f.c.FirstName),
		LastName:  pick("last", &f.c.LastName),
		Address:   pick("address", &f.c.Address),
		City:      pick("city", &f.c.City),
		State:     pick("state", &f.c.State),
		Zip:       pick("zip", &f.c.Zip),
		Phone:     pick("phone", &f.c.Phone),
		Email:     pick("email", &f.c.Email),
	}
}
