package types

// Contact is a single person's record. Identity within a book is the
// (FirstName, LastName) pair.
type Contact struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

// SameName reports whether c and other share the exact (first, last) pair.
func (c Contact) SameName(firstName, lastName string) bool {
	return c.FirstName == firstName && c.LastName == lastName
}

// FullName returns "First Last".
func (c Contact) FullName() string { return c.FirstName + " " + c.LastName }

// ContactUpdate carries the fields an edit should overwrite. A nil field is
// left unchanged.
type ContactUpdate struct {
	FirstName *string
	LastName  *string
	Address   *string
	City      *string
	State     *string
	Zip       *string
	Phone     *string
	Email     *string
}

// Empty reports whether no field is set.
func (u ContactUpdate) Empty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Address == nil &&
		u.City == nil && u.State == nil && u.Zip == nil &&
		u.Phone == nil && u.Email == nil
}

// Apply overwrites every set field of u onto c.
func (u ContactUpdate) Apply(c *Contact) {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&c.FirstName, u.FirstName)
	set(&c.LastName, u.LastName)
	set(&c.Address, u.Address)
	set(&c.City, u.City)
	set(&c.State, u.State)
	set(&c.Zip, u.Zip)
	set(&c.Phone, u.Phone)
	set(&c.Email, u.Email)
}
