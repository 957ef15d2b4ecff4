// Package hog implements the HOG archive container format.
//
// # Overview
//
// A HOG archive is a 3-byte "DHF" signature followed by records laid out
// back to back. Each record is a fixed 17-byte header (13-byte NUL-padded
// filename, u32 little-endian payload length) followed by exactly that
// many payload bytes. There is no index and no alignment padding; record
// N+1's offset is only known once record N's header has been read.
//
// API surface (internal)
//
//	w, _ := hog.Create("out.hog")
//	n, _ := w.Append("textures/rock.bbm")
//	_ = w.Close()
//
//	r, _ := hog.Open("descent.hog")
//	defer r.Close()
//	cur, _ := r.Records()
//	for {
//		rec, err := cur.Next()
//		if err != nil { /* traversal is over */ }
//		if rec == nil {
//			break
//		}
//		// either consume the payload ...
//		_, _ = cur.CopyPayload(dst)
//		// ... or just call Next again and it is skipped with a seek.
//	}
//
// A cursor exclusively borrows its reader's stream position; do not run
// two cursors from the same reader concurrently.
package hog
