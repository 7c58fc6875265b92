// Package export produces downloadable artifacts from the content document:
// the cms-data.json file a deployed site reads, and a PDF snapshot of the
// rendered page.
package export

import (
	"errors"
	"fmt"

	"nexus/admin/internal/content"
	"nexus/admin/internal/render"
	"nexus/admin/internal/store"
)

var ErrPDFDependencyMissing = errors.New("pdf export requires chromium")

// Result is a downloadable artifact.
type Result struct {
	Data     []byte
	Filename string
	MimeType string
}

// JSON exports the document as the pretty-printed data file. The download
// name matches the static file the site falls back to, so dropping it into
// the repo replaces the deployed content.
func JSON(doc *content.Document) (*Result, error) {
	data, err := store.Export(doc)
	if err != nil {
		return nil, fmt.Errorf("export json: %w", err)
	}
	return &Result{
		Data:     data,
		Filename: store.ExportFilename,
		MimeType: "application/json",
	}, nil
}

// PDF renders the site page from the document and prints it with headless
// Chrome.
func PDF(doc *content.Document) (*Result, error) {
	if chromiumPath() == "" {
		return nil, fmt.Errorf("%w: chromium not installed", ErrPDFDependencyMissing)
	}
	doc = content.Normalize(doc)
	html, err := render.Page(doc)
	if err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	data, err := renderPDF(string(html))
	if err != nil {
		return nil, err
	}
	return &Result{
		Data:     data,
		Filename: sanitizeFilename(doc.Settings.CompanyName) + ".pdf",
		MimeType: "application/pdf",
	}, nil
}
