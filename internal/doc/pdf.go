package doc

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// FromPDF extracts plain text from PDF bytes, page by page. Unlike text
// extraction, a PDF that cannot be read at all is a transport-level error:
// the caller reports it instead of feeding garbage to the extractor.
func FromPDF(data []byte) (text string, err error) {
	// The pdf package panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parse pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("extract page %d: %w", i, err)
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return NormalizeText([]byte(b.String())), nil
}

// FromUpload converts uploaded bytes to extractor input based on the file
// extension (lowercase, with dot). Supported: .txt, .html, .htm, .pdf.
func FromUpload(ext string, data []byte) (string, error) {
	switch ext {
	case ".txt":
		return NormalizeText(data), nil
	case ".html", ".htm":
		text, err := FromHTML(NormalizeText(data))
		if err != nil {
			return "", fmt.Errorf("parse html: %w", err)
		}
		return text, nil
	case ".pdf":
		return FromPDF(data)
	default:
		return "", fmt.Errorf("unsupported file type: %s", ext)
	}
}
