// Package store provides file-based persistence for user records.
//
// UserFileStore keeps the whole dataset in memory, loading it lazily from
// a single JSON document on first use and rewriting the document in full
// after every mutation. Loads are best-effort: a missing, malformed or
// partially bad file degrades to a smaller cache and is logged rather
// than surfaced, while write failures always propagate to the caller.
// Methods are concurrency-safe via internal locking.
//
// The package also implements passphrase-encrypted snapshot export and
// import of the same document, sealed with a scrypt-derived
// ChaCha20-Poly1305 key.
package store
