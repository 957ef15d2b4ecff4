package hog

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/n1000/hogdump/pkg/iocopy"
)

// Writer creates a HOG archive and appends records to it. It keeps its
// file handle open across Append calls so a batch of inputs can be added
// to one archive; Close flushes and releases it.
type Writer struct {
	f  *os.File
	bw *bufio.Writer
}

// Create creates (truncating) a new archive at path and writes the DHF
// signature. Failure to create the file or to write the signature is
// fatal to the call.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open HOG file: %w", err)
	}
	bw := bufio.NewWriter(f)
	if _, err := bw.Write(Signature[:]); err != nil {
		f.Close()
		return nil, fmt.Errorf("writing HOG signature failed: %w", err)
	}
	return &Writer{f: f, bw: bw}, nil
}

// Append encodes a record header for the file at path and streams the
// file's content into the archive immediately after it. It returns the
// payload bytes written. An I/O failure mid-copy leaves the archive
// truncated; no rollback is attempted.
func (w *Writer) Append(path string) (int64, error) {
	return w.AppendBuffer(path, nil)
}

// AppendBuffer is Append with a caller-supplied scratch buffer for the
// payload copy.
func (w *Writer) AppendBuffer(path string, buf []byte) (int64, error) {
	in, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open input file: %w", err)
	}
	defer in.Close()

	fi, err := in.Stat()
	if err != nil {
		return 0, fmt.Errorf("failed to append file to HOG: %w", err)
	}
	length := fi.Size()
	if length > MaxPayloadSize {
		return 0, fmt.Errorf("%w: %d bytes", ErrFileTooLarge, length)
	}

	name := filepath.Base(path)
	switch name {
	case ".", "..", string(filepath.Separator):
		return 0, fmt.Errorf("%w: %s", ErrBadFilename, path)
	}

	hdr, err := encodeHeader(name, uint32(length))
	if err != nil {
		return 0, err
	}
	if _, err := w.bw.Write(hdr[:]); err != nil {
		return 0, fmt.Errorf("failed to append file to HOG: %w", err)
	}
	copied, err := iocopy.CopyExactlyNBuffer(w.bw, in, length, buf)
	if err != nil {
		return copied, fmt.Errorf("failed to append file to HOG: %w", err)
	}
	return copied, nil
}

// Close flushes buffered archive bytes and closes the underlying file.
func (w *Writer) Close() error {
	if err := w.bw.Flush(); err != nil {
		w.f.Close()
		return fmt.Errorf("failed to append file to HOG: %w", err)
	}
	return w.f.Close()
}
