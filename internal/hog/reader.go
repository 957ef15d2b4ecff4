package hog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/n1000/hogdump/pkg/iocopy"
)

// Reader is an open HOG archive. Obtain record access through Records.
type Reader struct {
	f *os.File
}

// Open opens an existing archive and validates its signature. A short
// read before 3 bytes means the file cannot be a HOG archive.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open HOG file: %w", err)
	}
	var sig [len(Signature)]byte
	if _, err := io.ReadFull(f, sig[:]); err != nil {
		f.Close()
		return nil, fmt.Errorf("reading HOG signature failed: %w", err)
	}
	if sig != Signature {
		f.Close()
		return nil, ErrInvalidSignature
	}
	return &Reader{f: f}, nil
}

// Records rewinds the archive to just past the signature and returns a
// fresh cursor over its records. Multiple traversals of one open reader
// are supported, but never concurrently: a cursor exclusively borrows the
// reader's stream position.
func (r *Reader) Records() (*Cursor, error) {
	if _, err := r.f.Seek(int64(len(Signature)), io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to seek in HOG file: %w", err)
	}
	return &Cursor{r: r}, nil
}

// Close closes the underlying archive file.
func (r *Reader) Close() error {
	return r.f.Close()
}

// Cursor walks an archive's records in one sequential pass. After Next
// yields a record, the caller either consumes its payload with
// CopyPayload or simply calls Next again, in which case the payload is
// skipped with a forward seek rather than a read. Once a cursor hits an
// I/O or decode error it is permanently exhausted.
type Cursor struct {
	r          *Reader
	pending    int64
	hasPending bool
	faulted    bool
}

// Next advances to the next record. It returns (nil, nil) at the clean
// end of the archive and after any previous error.
func (c *Cursor) Next() (*Record, error) {
	if c.faulted {
		return nil, nil
	}

	if c.hasPending {
		// Caller did not copy the previous payload; skip it.
		c.hasPending = false
		if _, err := c.r.f.Seek(c.pending, io.SeekCurrent); err != nil {
			c.faulted = true
			return nil, fmt.Errorf("failed to seek in HOG file: %w", err)
		}
	}

	rec, err := c.readHeader()
	if err != nil {
		c.faulted = true
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	c.pending = int64(rec.Length)
	c.hasPending = true
	return rec, nil
}

// readHeader reads exactly one record header, retrying interrupted reads.
// A nil, nil return means the archive ended cleanly before this header.
func (c *Cursor) readHeader() (*Record, error) {
	var raw [HeaderSize]byte
	offset := 0
	for offset < HeaderSize {
		n, err := c.r.f.Read(raw[offset:])
		offset += n
		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			if offset == 0 {
				return nil, nil
			}
			if offset < HeaderSize {
				return nil, ErrUnexpectedEOF
			}
		case errors.Is(err, syscall.EINTR):
			continue
		default:
			return nil, fmt.Errorf("reading HOG record header failed: %w", err)
		}
	}
	rec, err := decodeHeader(&raw)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// CopyPayload copies the pending record's payload to dst, consuming it so
// the following Next performs no skip. It is only valid immediately after
// Next yielded a record; calling it at any other time is a programming
// error and panics.
func (c *Cursor) CopyPayload(dst io.Writer) (int64, error) {
	return c.CopyPayloadBuffer(dst, nil)
}

// CopyPayloadBuffer is CopyPayload with a caller-supplied scratch buffer.
func (c *Cursor) CopyPayloadBuffer(dst io.Writer, buf []byte) (int64, error) {
	if !c.hasPending {
		panic("hog: attempted to copy payload without first reading a record header")
	}
	c.hasPending = false
	copied, err := iocopy.CopyExactlyNBuffer(dst, c.r.f, c.pending, buf)
	if err != nil {
		c.faulted = true
		return copied, fmt.Errorf("failed to save file from HOG to disk: %w", err)
	}
	return copied, nil
}
