package dump

import (
	"github.com/n1000/hogdump/internal/hog"
)

// Create builds a new archive at out from the given input files, in
// order. Failing to create the archive itself is fatal; an input that
// cannot be appended is reported through OnFile and the batch continues
// with the next input. A failed append can leave a truncated trailing
// record in the archive (the format has no rollback).
func Create(out string, inputs []string, opts CreateOptions) (CreateSummary, error) {
	var sum CreateSummary

	w, err := hog.Create(out)
	if err != nil {
		return sum, err
	}

	var buf []byte
	if opts.CopyBufferSize > 0 {
		buf = make([]byte, opts.CopyBufferSize)
	}

	for _, in := range inputs {
		n, err := w.AppendBuffer(in, buf)
		if err != nil {
			sum.Failed++
		} else {
			sum.Added++
			sum.BytesWritten += uint64(n)
		}
		if opts.OnFile != nil {
			opts.OnFile(in, n, err)
		}
	}

	if err := w.Close(); err != nil {
		return sum, err
	}
	return sum, nil
}
