package addressbook

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"addressbook/internal/domain"
)

func newCollator() *collate.Collator {
	return collate.New(language.Und)
}

// sortStable orders contacts ascending by field using col. An empty value
// compares equal to everything, so it neither floats to the top nor sinks.
func sortStable(col *collate.Collator, contacts []domain.Contact, field domain.SortField) {
	slices.SortStableFunc(contacts, func(a, b domain.Contact) int {
		av, _ := field.Value(a)
		bv, _ := field.Value(b)
		if av == "" || bv == "" {
			return 0
		}
		return col.CompareString(av, bv)
	})
}
