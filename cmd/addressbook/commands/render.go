package commands

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"addressbook/internal/domain"
)

var contactHeaders = []string{"#", "First", "Last", "Address", "City", "State", "Zip", "Phone", "Email"}

func renderContacts(w io.Writer, contacts []domain.Contact, asJSON bool) error {
	if asJSON {
		b, err := json.MarshalIndent(contacts, "", "  ")
		if err != nil {
			return err
		}
		_, err = w.Write(append(b, '\n'))
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(contactHeaders...)
	for i, c := range contacts {
		t.Row(strconv.Itoa(i), c.FirstName, c.LastName, c.Address, c.City, c.State, c.Zip, c.Phone, c.Email)
	}
	_, err := io.WriteString(w, t.Render()+"\n")
	return err
}
