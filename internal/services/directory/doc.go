// Package directory implements the high-level record API used by the CLI.
//
// The service fronts a domain.UserStore: it applies the stricter email
// deliverability check before anything is persisted and logs record
// activity. The store itself only enforces the structural local@domain
// invariant.
package directory
