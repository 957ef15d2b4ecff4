package hog

import (
	"bytes"
	"encoding/binary"
	"unicode/utf8"
)

// On-disk record layout, all fields packed with no padding:
//
//	offset 0, 13 bytes: filename, NUL-padded on the right
//	offset 13, 4 bytes: payload length, u32 little-endian
//
// The payload follows the header immediately and occupies exactly length
// bytes.
const (
	// FilenameSize is the fixed width of the on-disk filename field.
	FilenameSize = 13

	// HeaderSize is the fixed width of a record header.
	HeaderSize = FilenameSize + 4

	// MaxFilenameLen is the longest storable filename. One byte of the
	// filename field is reserved for padding on write; a full 13-byte
	// name with no terminator is still accepted on read.
	MaxFilenameLen = FilenameSize - 1

	// MaxPayloadSize is the largest payload the 4-byte length field can
	// describe.
	MaxPayloadSize = int64(^uint32(0))
)

// Signature is the 3-byte marker at the start of every HOG archive.
var Signature = [3]byte{'D', 'H', 'F'}

// Record is one decoded archive entry. It is only valid while the cursor
// that yielded it still points at its payload; advancing the cursor
// invalidates it.
type Record struct {
	// Name is the stored filename. The format stores bare names only,
	// never directory components.
	Name string

	// Length is the exact byte length of the payload that follows the
	// header in the stream.
	Length uint32
}

// decodeHeader converts raw header bytes into a Record. The filename field
// is split at the first NUL; if no NUL is present all 13 bytes form the
// name. Names must be valid UTF-8.
func decodeHeader(raw *[HeaderSize]byte) (Record, error) {
	name := raw[:FilenameSize]
	if i := bytes.IndexByte(name, 0); i >= 0 {
		name = name[:i]
	}
	if !utf8.Valid(name) {
		return Record{}, ErrInvalidFilename
	}
	return Record{
		Name:   string(name),
		Length: binary.LittleEndian.Uint32(raw[FilenameSize:]),
	}, nil
}

// encodeHeader packs a filename and payload length into raw header bytes.
// Names of 13 bytes or more do not fit; the remainder of the filename
// field is right-padded with NULs.
func encodeHeader(name string, length uint32) ([HeaderSize]byte, error) {
	var raw [HeaderSize]byte
	if len(name) > MaxFilenameLen {
		return raw, ErrFilenameTooLong
	}
	copy(raw[:FilenameSize], name)
	binary.LittleEndian.PutUint32(raw[FilenameSize:], length)
	return raw, nil
}
