// Package dump drives whole-archive operations over the hog format
// engine: listing, extraction, and creation, with per-archive summary
// accounting.
//
// # Overview
//
// Each driver walks one archive with a single cursor. Listing never
// touches payload bytes (the cursor skips them with a seek); extraction
// copies each matching payload into a destination file governed by the
// overwrite policy. A destination that already exists under the
// no-overwrite policy is a counted outcome, not an error, and the
// record's payload is still skipped correctly.
//
// An optional CEL expression filters records by name, size and position;
// records it rejects take the same lazy-skip path as listing.
//
// Error isolation across a batch of archives is the caller's concern:
// drivers report the first fatal error of one archive and the CLI moves
// on to the next path.
package dump
