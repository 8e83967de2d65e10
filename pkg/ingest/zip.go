package ingest

import (
	"archive/zip"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/dmitrymomot/mailroom/pkg/match"
)

// FromZIP extracts the PDF documents from a ZIP archive. The document ID is
// the base filename without extension; entries in different folders that
// share a base name get a numeric suffix so IDs stay unique and every
// letter keeps its own bytes. Non-PDF entries and macOS resource forks are
// skipped, not errors; their names come back in skipped so the operator can
// see what was ignored.
func FromZIP(r io.ReaderAt, size int64) (docs []match.Document, skipped []string, err error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrBadArchive, err)
	}

	seen := make(map[string]int)
	for _, f := range zr.File {
		if f.FileInfo().IsDir() || strings.HasPrefix(f.Name, "__MACOSX") {
			continue
		}
		base := path.Base(f.Name)
		if !strings.EqualFold(path.Ext(base), ".pdf") {
			skipped = append(skipped, f.Name)
			continue
		}

		content, err := readZipFile(f)
		if err != nil {
			return nil, nil, fmt.Errorf("ingest: failed to read %s: %w", f.Name, err)
		}
		id := strings.TrimSuffix(base, path.Ext(base))
		seen[id]++
		if n := seen[id]; n > 1 {
			id = fmt.Sprintf("%s (%d)", id, n)
		}
		docs = append(docs, match.Document{ID: id, Content: content})
	}
	return docs, skipped, nil
}

func readZipFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
