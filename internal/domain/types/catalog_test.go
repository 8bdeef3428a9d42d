package types_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"addressbook/internal/domain/types"
)

func TestCatalog_UnmarshalKeepsBookOrder(t *testing.T) {
	var c types.Catalog
	require.NoError(t, json.Unmarshal([]byte(`{"Zeta":[],"Alpha":[{"firstName":"John"}],"Mid":null}`), &c))

	assert.Equal(t, []string{"Zeta", "Alpha", "Mid"}, c.Names())
	require.NotNil(t, c.Book("Mid"))
	assert.NotNil(t, c.Book("Mid").Contacts)
	assert.Equal(t, "John", c.Book("Alpha").Contacts[0].FirstName)
}

func TestCatalog_UnmarshalRepeatedKeyReplaces(t *testing.T) {
	var c types.Catalog
	require.NoError(t, json.Unmarshal([]byte(`{"A":[{"firstName":"Old"}],"B":[],"A":[{"firstName":"New"}]}`), &c))

	assert.Equal(t, []string{"A", "B"}, c.Names())
	assert.Equal(t, "New", c.Book("A").Contacts[0].FirstName)
}

func TestCatalog_UnmarshalRejectsList(t *testing.T) {
	var c types.Catalog
	assert.Error(t, json.Unmarshal([]byte(`[]`), &c))
}

func TestCatalog_MarshalEmpty(t *testing.T) {
	b, err := json.Marshal(types.Catalog{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(b))

	var c types.Catalog
	c.AddBook("X")
	b, err = json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"X":[]}`, string(b))
}

func TestCatalog_CloneIsDeep(t *testing.T) {
	var c types.Catalog
	b := c.AddBook("X")
	b.Contacts = append(b.Contacts, types.Contact{FirstName: "John"})

	clone := c.Clone()
	clone.Book("X").Contacts[0].FirstName = "Changed"
	assert.Equal(t, "John", c.Book("X").Contacts[0].FirstName)
}

func TestContactUpdate_Apply(t *testing.T) {
	city := "Pune"
	empty := ""
	c := types.Contact{FirstName: "John", City: "Delhi", Zip: "110001"}

	types.ContactUpdate{City: &city, Zip: &empty}.Apply(&c)
	assert.Equal(t, types.Contact{FirstName: "John", City: "Pune", Zip: ""}, c)
	assert.True(t, types.ContactUpdate{}.Empty())
}
