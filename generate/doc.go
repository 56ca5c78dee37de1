// Package generate produces random identifiers and passwords.
//
// UUIDs are version 4 (random). ULIDs generated in one batch share a
// monotonic entropy source, so a batch sorts in generation order even within
// a single millisecond. Passwords draw every character from crypto/rand.
package generate
