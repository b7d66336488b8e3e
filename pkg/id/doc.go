// Package id provides unique identifier generation utilities.
//
// Eight independent methods are available, plus a time-sortable ULID:
//
//   - UUID: random RFC 4122 version 4 UUID
//   - Timestamp: <unix-millis>-<13 base36 chars>
//   - Alphanumeric: n characters from 0-9a-zA-Z
//   - Structured: <prefix>-<unix-millis>-<6 base36 chars>
//   - Hash: first 12 hex characters of SHA-256(content)
//   - ShortUUID: first segment (8 hex chars) of a UUID v4
//   - Composite: <base36 unix-millis>-<3 base36 chars>-<3-digit sequence>
//   - URLSafe: unpadded base64url encoding of n random bytes
//   - ULID: 26 character Crockford base32, sortable by creation time
//
// The package-level functions share a default Generator. Construct one with
// New when the clock or random source needs to be controlled, e.g. in tests.
//
// # Errors
//
// Length arguments outside 1..MaxLength fail with ErrInvalidArgument. A
// failing random source surfaces ErrEntropyUnavailable; it is never retried.
//
//	s, err := id.Alphanumeric(0)
//	if errors.Is(err, id.ErrInvalidArgument) {
//	    // ...
//	}
//
// All functions are safe for concurrent use.
package id
