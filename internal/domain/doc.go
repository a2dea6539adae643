// Package domain holds the core types of userstore: the User record, its
// preference operations and structural codec, the error sentinels shared
// across packages, and the interfaces implemented by the store and service
// layers.
package domain
