package iocopy

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestCopyNExact(t *testing.T) {
	var dst bytes.Buffer
	n, err := CopyN(&dst, strings.NewReader("abcdef"), 4)
	if err != nil {
		t.Fatalf("copy: %v", err)
	}
	if n != 4 || dst.String() != "abcd" {
		t.Fatalf("got %d %q", n, dst.String())
	}
}

func TestCopyNShortSourceIsNotError(t *testing.T) {
	var dst bytes.Buffer
	n, err := CopyN(&dst, strings.NewReader("ab"), 10)
	if err != nil {
		t.Fatalf("copy: %v", err)
	}
	if n != 2 || dst.String() != "ab" {
		t.Fatalf("got %d %q", n, dst.String())
	}
}

func TestCopyExactlyNShortSource(t *testing.T) {
	var dst bytes.Buffer
	n, err := CopyExactlyN(&dst, strings.NewReader("ab"), 10)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("got %v", err)
	}
	if n != 2 {
		t.Fatalf("copied %d", n)
	}
}

func TestCopyExactlyNZero(t *testing.T) {
	var dst bytes.Buffer
	n, err := CopyExactlyN(&dst, strings.NewReader(""), 0)
	if err != nil || n != 0 {
		t.Fatalf("got %d %v", n, err)
	}
}

func TestCopyNBufferSmallBuffer(t *testing.T) {
	var dst bytes.Buffer
	src := strings.NewReader(strings.Repeat("x", 1000))
	n, err := CopyNBuffer(&dst, src, 1000, make([]byte, 7))
	if err != nil {
		t.Fatalf("copy: %v", err)
	}
	if n != 1000 || dst.Len() != 1000 {
		t.Fatalf("got %d bytes", n)
	}
}

type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) {
	if len(p) > 1 {
		return len(p) - 1, nil
	}
	return len(p), nil
}

func TestCopyNShortWrite(t *testing.T) {
	_, err := CopyN(shortWriter{}, strings.NewReader("abcdef"), 6)
	if !errors.Is(err, io.ErrShortWrite) {
		t.Fatalf("got %v", err)
	}
}
