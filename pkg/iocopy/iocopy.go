// Package iocopy provides bounded stream-to-stream copy primitives with
// transparent retry on interrupted I/O.
package iocopy

import (
	"errors"
	"fmt"
	"io"
	"syscall"
)

const defaultBufSize = 32 * 1024

// CopyN copies up to n bytes from src to dst. Running out of source bytes
// before n have been transferred is not an error; the number of bytes
// actually copied is returned. Reads interrupted by a signal (EINTR) are
// retried. Any other error is returned and the copy stops there.
func CopyN(dst io.Writer, src io.Reader, n int64) (int64, error) {
	return CopyNBuffer(dst, src, n, nil)
}

// CopyNBuffer is CopyN with a caller-supplied scratch buffer. If buf is nil
// or empty, a default-sized buffer is allocated.
func CopyNBuffer(dst io.Writer, src io.Reader, n int64, buf []byte) (int64, error) {
	if len(buf) == 0 {
		buf = make([]byte, defaultBufSize)
	}
	var copied int64
	for copied < n {
		maxRead := int64(len(buf))
		if rem := n - copied; rem < maxRead {
			maxRead = rem
		}
		rn, err := src.Read(buf[:maxRead])
		if rn > 0 {
			wn, werr := dst.Write(buf[:rn])
			copied += int64(wn)
			if werr != nil {
				return copied, werr
			}
			if wn != rn {
				return copied, io.ErrShortWrite
			}
		}
		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			return copied, nil
		case errors.Is(err, syscall.EINTR):
			continue
		default:
			return copied, err
		}
		if rn == 0 && err == nil {
			// Zero-byte read without error; treat as exhaustion to
			// avoid spinning on a misbehaving reader.
			return copied, nil
		}
	}
	return copied, nil
}

// CopyExactlyN copies exactly n bytes from src to dst. Source exhaustion
// before n bytes is an error wrapping io.ErrUnexpectedEOF. Interrupted
// reads are retried as in CopyN.
func CopyExactlyN(dst io.Writer, src io.Reader, n int64) (int64, error) {
	return CopyExactlyNBuffer(dst, src, n, nil)
}

// CopyExactlyNBuffer is CopyExactlyN with a caller-supplied scratch buffer.
func CopyExactlyNBuffer(dst io.Writer, src io.Reader, n int64, buf []byte) (int64, error) {
	copied, err := CopyNBuffer(dst, src, n, buf)
	if err != nil {
		return copied, err
	}
	if copied != n {
		return copied, fmt.Errorf("expected %d bytes, found %d: %w", n, copied, io.ErrUnexpectedEOF)
	}
	return copied, nil
}
