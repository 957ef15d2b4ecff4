package dump

import "github.com/n1000/hogdump/internal/hog"

// Outcome classifies what happened to one record during extraction.
type Outcome string

const (
	OutcomeExtracted Outcome = "extracted"
	OutcomeSkipped   Outcome = "skipped"
	OutcomeFiltered  Outcome = "filtered"
	OutcomeFailed    Outcome = "failed"
)

// Event describes one record visited by a driver. Err is set only for
// OutcomeFailed.
type Event struct {
	Record  hog.Record
	Outcome Outcome
	Bytes   int64
	Err     error
}

// ExtractOptions configures Extract.
type ExtractOptions struct {
	// Dir is the directory destination files are created in. Empty means
	// the current working directory. The format stores bare filenames
	// only, so every destination is a direct child of Dir.
	Dir string

	// Overwrite selects the destination policy: create/truncate when
	// true, create-only-if-absent when false.
	Overwrite bool

	// Filter is an optional CEL expression over name, size and index.
	// Records it rejects are skipped without reading their payloads.
	Filter string

	// CopyBufferSize sizes the payload copy buffer. Zero means a default.
	CopyBufferSize int

	// OnEvent, when set, is invoked for every visited record.
	OnEvent func(Event)
}

// ExtractSummary accumulates per-archive extraction counters.
type ExtractSummary struct {
	Processed      uint64
	Extracted      uint64
	Skipped        uint64
	Filtered       uint64
	Failed         uint64
	BytesExtracted uint64
}

// ListOptions configures List.
type ListOptions struct {
	// Filter is an optional CEL expression over name, size and index.
	Filter string

	// OnRecord, when set, is invoked for every record the filter accepts.
	OnRecord func(rec hog.Record)
}

// ListSummary accumulates per-archive listing counters.
type ListSummary struct {
	Files    uint64
	Filtered uint64
	Bytes    uint64
}

// CreateOptions configures Create.
type CreateOptions struct {
	// CopyBufferSize sizes the payload copy buffer. Zero means a default.
	CopyBufferSize int

	// OnFile, when set, is invoked after each append attempt with the
	// payload bytes written, or the error that kept the file out of the
	// archive.
	OnFile func(path string, bytes int64, err error)
}

// CreateSummary accumulates counters for one archive creation batch.
type CreateSummary struct {
	Added        uint64
	Failed       uint64
	BytesWritten uint64
}
