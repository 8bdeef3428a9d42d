package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"addressbook/internal/app"
	"addressbook/internal/domain"
)

type cli struct {
	t    *testing.T
	base []string
}

func newCLI(t *testing.T, backend string) *cli {
	t.Helper()
	for _, k := range []string{
		app.EnvStoreBackend, app.EnvStorePath, app.EnvStoreKey, app.EnvLogLevel, app.EnvLogMode,
	} {
		t.Setenv(k, "")
	}
	dir := t.TempDir()
	return &cli{t: t, base: []string{
		"--config", filepath.Join(dir, "config.yaml"),
		"--store", filepath.Join(dir, "catalog"),
		"--backend", backend,
		"--log-level", "error",
	}}
}

func (c *cli) run(args ...string) (stdout, stderr string, err error) {
	c.t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append(append([]string{}, args...), c.base...))
	err = execute(root)
	return out.String(), errOut.String(), err
}

func (c *cli) ok(args ...string) string {
	c.t.Helper()
	out, errOut, err := c.run(args...)
	require.NoError(c.t, err, "args %v, stderr %s", args, errOut)
	return out
}

var johnDoe = []string{
	"--first", "John", "--last", "Doe", "--address", "123 Main St",
	"--city", "New York", "--state", "New York", "--zip", "10001",
	"--phone", "9876543210", "--email", "john.doe@example.com",
}

func TestCLI_EndToEnd(t *testing.T) {
	for _, backend := range []string{app.BackendJSON, app.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			c := newCLI(t, backend)

			assert.Contains(t, c.ok("create-book", "Personal"), "created")
			assert.Contains(t, c.ok("create-book", "Personal"), "already exists")

			c.ok(append([]string{"add", "Personal"}, johnDoe...)...)
			assert.Equal(t, "1\n", c.ok("count", "Personal"))

			out, errOut, err := c.run(append([]string{"add", "Personal"}, johnDoe...)...)
			require.NoError(t, err)
			assert.Empty(t, out)
			assert.Contains(t, errOut, domain.ErrDuplicateContact.Error())
			assert.Equal(t, "1\n", c.ok("count", "Personal"))

			c.ok("delete", "Personal", "John", "Doe")
			assert.Equal(t, "0\n", c.ok("count", "Personal"))
		})
	}
}

func TestCLI_ReportedOutcomesDoNotFail(t *testing.T) {
	c := newCLI(t, app.BackendJSON)
	c.ok("create-book", "Personal")

	bad := append([]string{}, johnDoe...)
	bad[1] = "john"
	_, errOut, err := c.run(append([]string{"add", "Personal"}, bad...)...)
	require.NoError(t, err)
	assert.Contains(t, errOut, domain.ErrInvalidFirstName.Error())

	_, errOut, err = c.run("delete", "Personal", "Jon", "Doe")
	require.NoError(t, err)
	assert.Contains(t, errOut, domain.ErrContactNotFound.Error())

	_, errOut, err = c.run("list", "Nope")
	require.NoError(t, err)
	assert.Contains(t, errOut, domain.ErrBookNotFound.Error())

	_, errOut, err = c.run("sort", "Personal", "address")
	require.NoError(t, err)
	assert.Contains(t, errOut, domain.ErrInvalidSortField.Error())

	assert.Equal(t, "0\n", c.ok("count", "Nope"))
}

func TestCLI_DeleteAtOutOfRangeFails(t *testing.T) {
	c := newCLI(t, app.BackendJSON)
	c.ok("create-book", "Personal")

	_, _, err := c.run("delete-at", "Personal", "0")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidIndex)
}

func TestCLI_EditSortSearchList(t *testing.T) {
	c := newCLI(t, app.BackendJSON)
	c.ok("create-book", "Personal")
	c.ok(append([]string{"add", "Personal"}, johnDoe...)...)

	amy := append([]string{}, johnDoe...)
	amy[1], amy[3], amy[7] = "Amy", "Adams", "Boston"
	c.ok(append([]string{"add", "Personal"}, amy...)...)

	c.ok("edit", "Personal", "John", "Doe", "--city", "Albany")
	c.ok("sort", "Personal", "city")

	var listed []domain.Contact
	require.NoError(t, json.Unmarshal([]byte(c.ok("list", "Personal", "--json")), &listed))
	require.Len(t, listed, 2)
	assert.Equal(t, "Albany", listed[0].City)
	assert.Equal(t, "9876543210", listed[0].Phone, "unset flags must not be edited")
	assert.Equal(t, "Boston", listed[1].City)

	table := c.ok("list", "Personal")
	assert.Contains(t, table, "Albany")
	assert.Contains(t, table, "Adams")

	found := c.ok("search", "BOSTON")
	assert.Contains(t, found, "Amy")
	assert.NotContains(t, found, "Albany")
	assert.Contains(t, c.ok("search", "Nowhere"), "No contacts")
}

func TestCLI_ImportLegacy(t *testing.T) {
	c := newCLI(t, app.BackendJSON)
	legacy := filepath.Join(t.TempDir(), "Contacts.json")
	require.NoError(t, os.WriteFile(legacy, []byte(`[
  {"firstName":"Arjun","lastName":"Chouhan","address":"123 Street","city":"Bhopal",
   "state":"Madhya Pradesh","zip":"462022","phone":"325012378","email":"arjun@example.com"},
  {"firstName":"Priya","lastName":"Sharma","address":"9 Lake Road","city":"Bhopal",
   "state":"Madhya Pradesh","zip":"462001","phone":"9123456789","email":"priya@example.com"}
]`), 0o600))

	out, errOut, err := c.run("import-legacy", "Old", legacy)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 of 2")
	assert.Contains(t, errOut, "Arjun Chouhan")
	assert.Equal(t, "1\n", c.ok("count", "Old"))
}

func TestCLI_BooksAndConfig(t *testing.T) {
	c := newCLI(t, app.BackendSQLite)
	c.ok("create-book", "Work")
	c.ok("create-book", "Home")

	lines := strings.Split(strings.TrimSpace(c.ok("books")), "\n")
	assert.Equal(t, []string{"Work (0)", "Home (0)"}, lines)

	cfg := c.ok("config")
	assert.Contains(t, cfg, "backend: sqlite")
	assert.Contains(t, cfg, "level: error")
}
