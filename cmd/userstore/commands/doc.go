// Package commands defines the userstore CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - add      Create a user record and persist it
//   - get      Print one user record
//   - list     Print stored records with pagination
//   - remove   Delete a user record
//   - pref     Set, unset or clear preferences on a record
//   - seed     Store a few sample users
//   - export   Write a passphrase-encrypted snapshot of the dataset
//   - import   Restore the dataset from an encrypted snapshot
//
// # Implementation
//
// The root command reads configuration from the environment, applies flag
// overrides and builds the dependency graph (store, directory service,
// logger) before any subcommand runs, so handlers share one app context.
package commands
