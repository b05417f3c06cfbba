package extract

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	docx "github.com/fumiama/go-docx"
	"github.com/ledongthuc/pdf"
)

// ErrUnsupportedFormat is returned for file extensions the extractor does
// not recognize.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// SupportedExtensions lists the upload formats the extractor accepts.
var SupportedExtensions = []string{"pdf", "docx", "doc", "txt"}

// IsSupported reports whether the filename's extension is one the
// extractor can decode.
func IsSupported(filename string) bool {
	ext := normalizeExt(filename)
	for _, s := range SupportedExtensions {
		if ext == s {
			return true
		}
	}
	return false
}

// FromFile converts an uploaded binary into plain text, dispatching on the
// file extension. There are no partial results: any per-page or
// per-paragraph decode error aborts the whole extraction.
func FromFile(filename string, data []byte) (string, error) {
	switch ext := normalizeExt(filename); ext {
	case "pdf":
		return fromPDF(data)
	case "docx", "doc":
		return fromDOCX(data)
	case "txt":
		return fromTXT(data)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

func normalizeExt(filename string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
}

func fromPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("read pdf page %d: %w", i, err)
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return strings.TrimSpace(sb.String()), nil
}

func fromDOCX(data []byte) (string, error) {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read docx: %w", err)
	}

	var sb strings.Builder
	for _, item := range doc.Document.Body.Items {
		if p, ok := item.(*docx.Paragraph); ok {
			sb.WriteString(p.String())
			sb.WriteString("\n")
		}
	}
	return strings.TrimSpace(sb.String()), nil
}

func fromTXT(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", errors.New("read txt: invalid utf-8 content")
	}
	return strings.TrimSpace(string(data)), nil
}
