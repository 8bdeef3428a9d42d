// Package commands defines the addressbook CLI and wires dependencies for subcommands.
//
// Commands
//
//   - create-book    Create an empty address book
//   - books          List address books
//   - add            Validate and add a contact to a book
//   - list           Show a book's contacts in stored order
//   - count          Count the contacts in a book
//   - edit           Overwrite selected fields of a contact
//   - delete         Delete a contact by first and last name
//   - delete-at      Delete a contact by position
//   - search         Find contacts by city or state across all books
//   - sort           Reorder a book by a contact field
//   - import-legacy  Import a legacy single-book contact list
//   - config         Print the effective configuration
//
// # Implementation
//
// The root command loads the configuration and builds the dependency graph
// (logger, catalog store, address book service) before any subcommand runs.
// Expected outcomes such as a duplicate or an invalid field are printed and
// the command still succeeds; storage write failures and out-of-range
// positions fail the command.
package commands
