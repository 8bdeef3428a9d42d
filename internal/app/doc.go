// Package app wires application dependencies for the CLI.
//
// It loads Config (YAML file, then environment overrides), and builds the
// logger, the catalog store selected by Config.Store.Backend and the address
// book service, exposing them via the Wire struct for commands to use.
package app
