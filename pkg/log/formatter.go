package log

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// TextFormatter renders entries as "ts LEVEL message key=value ...".
type TextFormatter struct {
	// TimestampFormat overrides the time layout. Empty means RFC3339.
	TimestampFormat string
}

// Format renders one entry as a single text line.
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	layout := f.TimestampFormat
	if layout == "" {
		layout = "2006-01-02T15:04:05Z07:00"
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s %-5s %s", entry.Timestamp.Format(layout), entry.Level, entry.Message)
	for _, k := range sortedKeys(entry.Fields) {
		fmt.Fprintf(&buf, " %s=%v", k, entry.Fields[k])
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// JSONFormatter renders entries as one JSON object per line.
type JSONFormatter struct{}

// Format renders one entry as a JSON line.
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	obj := map[string]interface{}{
		"ts":    entry.Timestamp,
		"level": entry.Level.String(),
		"msg":   entry.Message,
	}
	for k, v := range entry.Fields {
		obj[k] = v
	}
	b, err := json.Marshal(obj)
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

func sortedKeys(fields Fields) []string {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
