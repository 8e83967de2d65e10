package ingest

import (
	"bytes"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/dmitrymomot/mailroom/pkg/match"
)

// SplitLetters cuts a combined PDF into one document per letter. A page
// containing the marker (the sender's tax ID printed in each letter header)
// starts a new letter; the letter runs until the page before the next
// marker. The client name is extracted from the first page of each letter
// and becomes the document ID, falling back to a sequential placeholder.
func SplitLetters(pdfBytes []byte, marker string) ([]match.Document, error) {
	// An empty marker would match every page and shred the PDF leaf by leaf.
	if marker == "" {
		return nil, fmt.Errorf("%w: empty marker", ErrMarkerNotFound)
	}

	reader, err := pdf.NewReader(bytes.NewReader(pdfBytes), int64(len(pdfBytes)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPDF, err)
	}

	total := reader.NumPage()
	pages := make([][]string, total+1) // 1-based
	var starts []int
	for i := 1; i <= total; i++ {
		pages[i] = pageLines(reader.Page(i))
		for _, line := range pages[i] {
			if strings.Contains(line, marker) {
				starts = append(starts, i)
				break
			}
		}
	}
	if len(starts) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrMarkerNotFound, marker)
	}

	docs := make([]match.Document, 0, len(starts))
	seen := make(map[string]int, len(starts))
	for idx, start := range starts {
		end := total
		if idx+1 < len(starts) {
			end = starts[idx+1] - 1
		}

		content, err := extractPages(pdfBytes, start, end)
		if err != nil {
			return nil, fmt.Errorf("ingest: failed to extract pages %d-%d: %w", start, end, err)
		}

		id := letterName(pages[start], marker, idx)
		seen[id]++
		if n := seen[id]; n > 1 {
			id = fmt.Sprintf("%s (%d)", id, n)
		}
		docs = append(docs, match.Document{ID: id, Content: content})
	}
	return docs, nil
}

// extractPages writes the inclusive page range as a standalone PDF.
func extractPages(pdfBytes []byte, from, to int) ([]byte, error) {
	var buf bytes.Buffer
	selection := []string{fmt.Sprintf("%d-%d", from, to)}
	if err := api.Trim(bytes.NewReader(pdfBytes), &buf, selection, nil); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// pageLines reconstructs the text lines of a page from positioned fragments:
// fragments sharing a baseline belong to one line, lines read top to bottom.
func pageLines(p pdf.Page) (lines []string) {
	// The content-stream parser panics on some malformed PDFs; a page we
	// cannot read is treated as having no text.
	defer func() {
		if recover() != nil {
			lines = nil
		}
	}()

	if p.V.IsNull() {
		return nil
	}

	texts := p.Content().Text
	byLine := make(map[int][]pdf.Text)
	var ys []int
	for _, t := range texts {
		y := int(math.Round(t.Y))
		if _, ok := byLine[y]; !ok {
			ys = append(ys, y)
		}
		byLine[y] = append(byLine[y], t)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ys))) // PDF y grows upward

	for _, y := range ys {
		frags := byLine[y]
		sort.Slice(frags, func(i, j int) bool { return frags[i].X < frags[j].X })
		var sb strings.Builder
		for _, f := range frags {
			sb.WriteString(f.S)
		}
		if line := strings.TrimSpace(sb.String()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// letterName extracts the client name from a letter's first-page lines.
// Two header shapes are recognized: the name on the line after the
// "ejercicio ... es de:" sentence, or the line right after the marker line.
func letterName(lines []string, marker string, idx int) string {
	fallback := fmt.Sprintf("Cliente_%03d", idx+1)

	for i, line := range lines {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "ejercicio") && strings.Contains(lower, "es de:") {
			if i+1 < len(lines) && !strings.EqualFold(lines[i+1], "euros") {
				if name := sanitizeID(lines[i+1]); name != "" {
					return name
				}
			}
		}
	}
	for i, line := range lines {
		if strings.Contains(line, marker) && i+1 < len(lines) {
			candidate := lines[i+1]
			if !strings.Contains(candidate, "Muy Sr") {
				if name := sanitizeID(candidate); name != "" {
					return name
				}
			}
		}
	}
	return fallback
}

// sanitizeID strips characters that are unsafe in filenames and caps the
// length, since document IDs become attachment names.
func sanitizeID(s string) string {
	s = strings.Map(func(r rune) rune {
		switch r {
		case '\\', '/', '*', '?', ':', '"', '<', '>', '|':
			return -1
		}
		return r
	}, s)
	s = strings.TrimSpace(s)
	if runes := []rune(s); len(runes) > 80 {
		s = string(runes[:80])
	}
	return s
}
