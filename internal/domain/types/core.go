package types

// ContactField names one of the eight Contact fields as it appears on disk.
type ContactField string

// Contact field names, in validation order.
const (
	FieldFirstName ContactField = "firstName"
	FieldLastName  ContactField = "lastName"
	FieldAddress   ContactField = "address"
	FieldCity      ContactField = "city"
	FieldState     ContactField = "state"
	FieldZip       ContactField = "zip"
	FieldPhone     ContactField = "phone"
	FieldEmail     ContactField = "email"
)

// String returns the string form of the field name.
func (f ContactField) String() string { return string(f) }

// ImportReport summarises a bulk import into one book.
type ImportReport struct {
	Book     string
	Added    int
	Rejected []ImportRejection
}

// ImportRejection records why a single contact was not imported.
type ImportRejection struct {
	Contact Contact
	Reason  error
}
