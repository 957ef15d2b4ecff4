package dump

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/n1000/hogdump/internal/hog"
)

// Extract walks the archive at path and writes each record's payload to a
// file named after the record in opts.Dir. A destination that already
// exists under the no-overwrite policy is counted and skipped; a
// destination that cannot be created fails that one record and the walk
// continues. The first archive-level I/O or decode error ends the walk
// and is returned alongside the counters gathered so far.
func Extract(path string, opts ExtractOptions) (ExtractSummary, error) {
	var sum ExtractSummary

	filter, err := newRecordFilter(opts.Filter)
	if err != nil {
		return sum, fmt.Errorf("invalid filter expression: %w", err)
	}

	r, err := hog.Open(path)
	if err != nil {
		return sum, err
	}
	defer r.Close()

	cur, err := r.Records()
	if err != nil {
		return sum, err
	}

	var buf []byte
	if opts.CopyBufferSize > 0 {
		buf = make([]byte, opts.CopyBufferSize)
	}

	for index := 0; ; index++ {
		rec, err := cur.Next()
		if err != nil {
			return sum, err
		}
		if rec == nil {
			return sum, nil
		}
		sum.Processed++

		if !filter.Match(rec.Name, rec.Length, index) {
			sum.Filtered++
			emit(opts.OnEvent, Event{Record: *rec, Outcome: OutcomeFiltered})
			continue
		}

		dst, outcome, err := createDestination(filepath.Join(opts.Dir, rec.Name), opts.Overwrite)
		if dst == nil {
			switch outcome {
			case OutcomeSkipped:
				sum.Skipped++
			case OutcomeFailed:
				sum.Failed++
			}
			emit(opts.OnEvent, Event{Record: *rec, Outcome: outcome, Err: err})
			continue
		}

		n, err := cur.CopyPayloadBuffer(dst, buf)
		if err != nil {
			dst.Close()
			// The cursor is faulted; the whole traversal is over.
			emit(opts.OnEvent, Event{Record: *rec, Outcome: OutcomeFailed, Err: err})
			sum.Failed++
			return sum, err
		}
		if err := dst.Close(); err != nil {
			sum.Failed++
			emit(opts.OnEvent, Event{Record: *rec, Outcome: OutcomeFailed, Err: err})
			continue
		}
		sum.Extracted++
		sum.BytesExtracted += uint64(n)
		emit(opts.OnEvent, Event{Record: *rec, Outcome: OutcomeExtracted, Bytes: n})
	}
}

// createDestination opens the output file for one record. A nil file
// means the record is not extracted; outcome says whether that is a
// counted skip (already exists, no-overwrite policy) or a failure.
func createDestination(path string, overwrite bool) (*os.File, Outcome, error) {
	if overwrite {
		f, err := os.Create(path)
		if err != nil {
			return nil, OutcomeFailed, fmt.Errorf("failed to open output file: %w", err)
		}
		return f, OutcomeExtracted, nil
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return nil, OutcomeSkipped, nil
		}
		return nil, OutcomeFailed, fmt.Errorf("failed to open output file: %w", err)
	}
	return f, OutcomeExtracted, nil
}

func emit(fn func(Event), ev Event) {
	if fn != nil {
		fn(ev)
	}
}
