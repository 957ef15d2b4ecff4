package dump

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/n1000/hogdump/internal/hog"
)

// newArchive builds a HOG archive from name -> content pairs appended in
// the given order and returns its path.
func newArchive(t *testing.T, names []string, contents map[string][]byte) string {
	t.Helper()
	dir := t.TempDir()
	out := filepath.Join(dir, "a.hog")
	w, err := hog.Create(out)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	for _, name := range names {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, contents[name], 0o644); err != nil {
			t.Fatalf("write input: %v", err)
		}
		if _, err := w.Append(p); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	return out
}

var testNames = []string{"A.TXT", "B.BIN", "C.DAT"}
var testContents = map[string][]byte{
	"A.TXT": []byte("hello"),
	"B.BIN": {0, 1, 2},
	"C.DAT": []byte("world!!"),
}

func TestExtract(t *testing.T) {
	archive := newArchive(t, testNames, testContents)
	outDir := t.TempDir()

	sum, err := Extract(archive, ExtractOptions{Dir: outDir, Overwrite: true})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if sum.Processed != 3 || sum.Extracted != 3 || sum.Skipped != 0 || sum.BytesExtracted != 15 {
		t.Fatalf("summary: %+v", sum)
	}
	for name, want := range testContents {
		got, err := os.ReadFile(filepath.Join(outDir, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if string(got) != string(want) {
			t.Fatalf("%s content mismatch", name)
		}
	}
}

func TestExtractNoOverwriteSkipsExisting(t *testing.T) {
	archive := newArchive(t, testNames, testContents)
	outDir := t.TempDir()

	if _, err := Extract(archive, ExtractOptions{Dir: outDir}); err != nil {
		t.Fatalf("first extract: %v", err)
	}
	// Tamper with one output so we can prove the second run leaves it alone.
	marker := filepath.Join(outDir, "A.TXT")
	if err := os.WriteFile(marker, []byte("tampered"), 0o644); err != nil {
		t.Fatalf("tamper: %v", err)
	}

	sum, err := Extract(archive, ExtractOptions{Dir: outDir})
	if err != nil {
		t.Fatalf("second extract: %v", err)
	}
	if sum.Processed != 3 || sum.Extracted != 0 || sum.Skipped != 3 || sum.BytesExtracted != 0 {
		t.Fatalf("summary: %+v", sum)
	}
	got, err := os.ReadFile(marker)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != "tampered" {
		t.Fatalf("skipped destination was rewritten: %q", got)
	}
}

func TestListMatchesExtract(t *testing.T) {
	archive := newArchive(t, testNames, testContents)

	lsum, err := List(archive, ListOptions{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	esum, err := Extract(archive, ExtractOptions{Dir: t.TempDir(), Overwrite: true})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if lsum.Files != esum.Extracted || lsum.Bytes != esum.BytesExtracted {
		t.Fatalf("list %+v does not match extract %+v", lsum, esum)
	}
}

func TestListVisitsRecordsInOrder(t *testing.T) {
	archive := newArchive(t, testNames, testContents)

	var seen []string
	sum, err := List(archive, ListOptions{OnRecord: func(rec hog.Record) {
		seen = append(seen, rec.Name)
	}})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if sum.Files != 3 || sum.Bytes != 15 {
		t.Fatalf("summary: %+v", sum)
	}
	for i, name := range testNames {
		if seen[i] != name {
			t.Fatalf("order: %v", seen)
		}
	}
}

func TestFilterByNameAndSize(t *testing.T) {
	archive := newArchive(t, testNames, testContents)

	sum, err := List(archive, ListOptions{Filter: `name.endsWith(".TXT")`})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if sum.Files != 1 || sum.Filtered != 2 || sum.Bytes != 5 {
		t.Fatalf("name filter: %+v", sum)
	}

	sum, err = List(archive, ListOptions{Filter: `size > 4`})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if sum.Files != 2 || sum.Bytes != 12 {
		t.Fatalf("size filter: %+v", sum)
	}
}

func TestFilterInvalidExpression(t *testing.T) {
	archive := newArchive(t, testNames, testContents)
	if _, err := List(archive, ListOptions{Filter: `name +`}); err == nil {
		t.Fatalf("expected compile error")
	}
}

func TestExtractWithFilterSkipsPayloads(t *testing.T) {
	archive := newArchive(t, testNames, testContents)
	outDir := t.TempDir()

	sum, err := Extract(archive, ExtractOptions{Dir: outDir, Overwrite: true, Filter: `index == 1`})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if sum.Processed != 3 || sum.Extracted != 1 || sum.Filtered != 2 || sum.BytesExtracted != 3 {
		t.Fatalf("summary: %+v", sum)
	}
	if _, err := os.Stat(filepath.Join(outDir, "A.TXT")); !os.IsNotExist(err) {
		t.Fatalf("filtered record was extracted")
	}
	got, err := os.ReadFile(filepath.Join(outDir, "B.BIN"))
	if err != nil || len(got) != 3 {
		t.Fatalf("matched record: %v %v", got, err)
	}
}

func TestCreateReportsPerFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "GOOD.TXT")
	if err := os.WriteFile(good, []byte("data"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	missing := filepath.Join(dir, "MISSING")
	out := filepath.Join(dir, "out.hog")

	var events int
	sum, err := Create(out, []string{good, missing}, CreateOptions{
		OnFile: func(path string, bytes int64, err error) { events++ },
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if sum.Added != 1 || sum.Failed != 1 || sum.BytesWritten != 4 {
		t.Fatalf("summary: %+v", sum)
	}
	if events != 2 {
		t.Fatalf("events: %d", events)
	}

	// The archive must still list the file that made it in.
	lsum, err := List(out, ListOptions{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if lsum.Files != 1 || lsum.Bytes != 4 {
		t.Fatalf("list: %+v", lsum)
	}
}

func TestExtractTruncatedArchive(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trunc.hog")
	data := append([]byte("DHF"), make([]byte, 10)...)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Extract(path, ExtractOptions{Dir: t.TempDir(), Overwrite: true}); err == nil {
		t.Fatalf("expected error")
	}
}
