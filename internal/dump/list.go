package dump

import (
	"fmt"

	"github.com/n1000/hogdump/internal/hog"
)

// List walks the archive at path without reading any payload bytes; every
// record takes the lazy-skip path. Counters cover the records the filter
// accepts.
func List(path string, opts ListOptions) (ListSummary, error) {
	var sum ListSummary

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

	for index := 0; ; index++ {
		rec, err := cur.Next()
		if err != nil {
			return sum, err
		}
		if rec == nil {
			return sum, nil
		}
		if !filter.Match(rec.Name, rec.Length, index) {
			sum.Filtered++
			continue
		}
		sum.Files++
		sum.Bytes += uint64(rec.Length)
		if opts.OnRecord != nil {
			opts.OnRecord(*rec)
		}
	}
}
