package ingestion

import (
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ExtractText reads the stored file and returns its plain text content.
// PDF pages are concatenated in document order; DOCX styling is discarded.
func ExtractText(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return extractPDFText(path)
	case ".docx":
		return extractDocxText(path)
	default:
		return "", &UnsupportedTypeError{Extension: filepath.Ext(path)}
	}
}

func extractPDFText(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", &ParseError{Message: "failed to open pdf", Cause: err}
	}
	defer func() { _ = f.Close() }()

	var sb strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", &ParseError{Message: "failed to read pdf page", Cause: err}
		}
		sb.WriteString(text)
	}

	return sb.String(), nil
}

func extractDocxText(path string) (string, error) {
	doc, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", &ParseError{Message: "failed to parse docx", Cause: err}
	}
	defer func() { _ = doc.Close() }()

	return doc.Editable().GetContent(), nil
}
