package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// AddressBook is a named, ordered collection of contacts.
type AddressBook struct {
	Name     string
	Contacts []Contact
}

// Index returns the position of the contact named (firstName, lastName), or -1.
func (b *AddressBook) Index(firstName, lastName string) int {
	for i, c := range b.Contacts {
		if c.SameName(firstName, lastName) {
			return i
		}
	}
	return -1
}

// Catalog is the full set of address books, in creation order. It is the
// unit of persistence.
//
// On disk a Catalog is a single JSON object mapping book name to its list of
// contacts. Key order in that object is the book order.
type Catalog struct {
	Books []AddressBook
}

// Book returns the named book, or nil when absent. The pointer aliases c.
func (c *Catalog) Book(name string) *AddressBook {
	for i := range c.Books {
		if c.Books[i].Name == name {
			return &c.Books[i]
		}
	}
	return nil
}

// AddBook appends an empty book and returns it. Callers check for an
// existing book first.
func (c *Catalog) AddBook(name string) *AddressBook {
	c.Books = append(c.Books, AddressBook{Name: name, Contacts: []Contact{}})
	return &c.Books[len(c.Books)-1]
}

// Names returns the book names in catalog order.
func (c Catalog) Names() []string {
	out := make([]string, 0, len(c.Books))
	for _, b := range c.Books {
		out = append(out, b.Name)
	}
	return out
}

// Clone returns a deep copy of c.
func (c Catalog) Clone() Catalog {
	out := Catalog{Books: make([]AddressBook, len(c.Books))}
	for i, b := range c.Books {
		out.Books[i] = AddressBook{
			Name:     b.Name,
			Contacts: append([]Contact{}, b.Contacts...),
		}
	}
	return out
}

// MarshalJSON encodes the catalog as an object keyed by book name, keeping
// book order.
func (c Catalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, b := range c.Books {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(b.Name)
		if err != nil {
			return nil, err
		}
		contacts := b.Contacts
		if contacts == nil {
			contacts = []Contact{}
		}
		body, err := json.Marshal(contacts)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(body)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON mirrors MarshalJSON. A repeated key replaces the earlier
// book's contacts in place.
func (c *Catalog) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("catalog: want JSON object, got %v", tok)
	}

	out := Catalog{Books: []AddressBook{}}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("catalog: want book name, got %v", tok)
		}
		var contacts []Contact
		if err := dec.Decode(&contacts); err != nil {
			return fmt.Errorf("catalog: book %q: %w", name, err)
		}
		if contacts == nil {
			contacts = []Contact{}
		}
		if b := out.Book(name); b != nil {
			b.Contacts = contacts
			continue
		}
		out.Books = append(out.Books, AddressBook{Name: name, Contacts: contacts})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*c = out
	return nil
}
