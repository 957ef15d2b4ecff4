package hog

import "errors"

// Format-violation sentinels. I/O failures (open, seek, read, write) are
// wrapped with fmt.Errorf("...: %w", err) at the point of failure so the
// underlying error chain survives.
var (
	// ErrInvalidSignature means the file did not start with the DHF marker.
	ErrInvalidSignature = errors.New("file did not have correct HOG signature")

	// ErrUnexpectedEOF means the stream ended in the middle of a record header.
	ErrUnexpectedEOF = errors.New("unexpected end of file encountered")

	// ErrInvalidFilename means a record header carried a filename that is
	// not valid text.
	ErrInvalidFilename = errors.New("invalid filename found in HOG record header")

	// ErrFilenameTooLong means a filename cannot be stored in a record
	// header. The usable limit is 12 bytes; one pad byte is reserved.
	ErrFilenameTooLong = errors.New("filename cannot be stored in HOG file (it must be 12 bytes or fewer)")

	// ErrFileTooLarge means a payload exceeds the 4-byte length field.
	ErrFileTooLarge = errors.New("file cannot be stored in HOG (it is too large)")

	// ErrBadFilename means no storable filename could be derived from a
	// source path.
	ErrBadFilename = errors.New("could not find filename basename of file")
)
