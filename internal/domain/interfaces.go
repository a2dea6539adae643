package domain

// UserStore is the owning cache and persistence layer for user records.
// Implementations load lazily on first use and rewrite the full dataset
// after every mutation.
type UserStore interface {
	// Get returns a copy of the record with the given id, if present.
	Get(id int) (*User, bool)

	// List returns records in insertion order, skipping offset entries
	// and returning at most limit of the rest. limit <= 0 means no limit.
	List(limit, offset int) []*User

	// Save upserts the record and persists the dataset.
	Save(u *User) error

	// Delete removes the record if present, persisting only when it was.
	// The bool reports whether a record was removed.
	Delete(id int) (bool, error)
}

// Directory is the high-level record API used by the CLI: it layers the
// stricter email deliverability check and activity logging over a store.
type Directory interface {
	Add(u *User) error
	Get(id int) (*User, bool)
	List(limit, offset int) []*User
	Remove(id int) (bool, error)
	Seed() ([]*User, error)
}
