package services

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/ledongthuc/pdf"
)

var (
	// ErrCorruptDocument means the bytes could not be parsed as a PDF at all,
	// or the document has no pages.
	ErrCorruptDocument = errors.New("document cannot be parsed as a PDF")

	// ErrNoExtractableText means the PDF opened but yielded only whitespace
	// across all pages, e.g. a scanned image or unsupported encoding.
	ErrNoExtractableText = errors.New("document contains no extractable text")
)

type TextExtractor interface {
	Validate(data []byte) bool
	Extract(data []byte) (string, error)
}

// extractCacheLimit bounds the memoization map; when full it is reset rather
// than evicted entry-by-entry. Same bytes always produce the same text, so a
// reset only costs a re-extraction.
const extractCacheLimit = 64

type textExtractor struct {
	mu    sync.Mutex
	cache map[[sha256.Size]byte]string
}

func NewTextExtractor() TextExtractor {
	return &textExtractor{
		cache: make(map[[sha256.Size]byte]string),
	}
}

// Validate reports whether the bytes parse as a PDF with at least one
// accessible page. It never modifies the input.
func (e *textExtractor) Validate(data []byte) bool {
	r, err := openReader(data)
	if err != nil {
		return false
	}

	totalPage := r.NumPage()
	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		if pageAccessible(r, pageIndex) {
			return true
		}
	}
	return false
}

// Extract pulls plain text out of the PDF, page by page. A page that fails to
// extract is skipped; the remaining pages still contribute. Results are
// memoized by content hash so repeated extraction of the same upload is free.
func (e *textExtractor) Extract(data []byte) (string, error) {
	key := sha256.Sum256(data)

	e.mu.Lock()
	if text, ok := e.cache[key]; ok {
		e.mu.Unlock()
		return text, nil
	}
	e.mu.Unlock()

	text, err := extractAllPages(data)
	if err != nil {
		return "", err
	}

	e.mu.Lock()
	if len(e.cache) >= extractCacheLimit {
		e.cache = make(map[[sha256.Size]byte]string)
	}
	e.cache[key] = text
	e.mu.Unlock()

	return text, nil
}

func extractAllPages(data []byte) (string, error) {
	r, err := openReader(data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}

	totalPage := r.NumPage()
	if totalPage < 1 {
		return "", ErrCorruptDocument
	}

	var textBuilder strings.Builder
	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		pageText, ok := extractPage(r, pageIndex)
		if !ok {
			// Page failed to extract; continue with the rest.
			continue
		}
		textBuilder.WriteString(sanitizePageText(pageText))
	}

	text := strings.TrimSpace(textBuilder.String())
	if text == "" {
		return "", ErrNoExtractableText
	}

	return text, nil
}

// sanitizePageText drops invalid UTF-8 sequences from extracted page text.
// Broken font encodings produce stray bytes that would otherwise corrupt the
// aggregate.
func sanitizePageText(s string) string {
	return strings.ToValidUTF8(s, "")
}

// openReader wraps pdf.NewReader; the underlying parser panics on some
// malformed inputs, so panics are converted into parse errors.
func openReader(data []byte) (r *pdf.Reader, err error) {
	defer func() {
		if p := recover(); p != nil {
			r = nil
			err = fmt.Errorf("pdf parse failure: %v", p)
		}
	}()

	return pdf.NewReader(bytes.NewReader(data), int64(len(data)))
}

func pageAccessible(r *pdf.Reader, pageIndex int) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	return !r.Page(pageIndex).V.IsNull()
}

func extractPage(r *pdf.Reader, pageIndex int) (text string, ok bool) {
	defer func() {
		if recover() != nil {
			text = ""
			ok = false
		}
	}()

	page := r.Page(pageIndex)
	if page.V.IsNull() {
		return "", false
	}

	pageText, err := page.GetPlainText(nil)
	if err != nil {
		return "", false
	}

	return pageText, true
}
