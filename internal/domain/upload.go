package domain

import (
	"path/filepath"
	"strings"
)

const (
	ContentTypePDF  = "application/pdf"
	ContentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	ContentTypeJSON = "application/json"
)

// Upload is the file handle handed to the import provider.
type Upload struct {
	Name        string
	ContentType string
	Data        []byte
}

// Accepted reports whether the intake surface takes this file: a PDF by
// content type or a .docx by name.
func (u Upload) Accepted() bool {
	return u.ContentType == ContentTypePDF || strings.HasSuffix(strings.ToLower(u.Name), ".docx")
}

// IsPDF reports whether the upload should be treated as a PDF.
func (u Upload) IsPDF() bool {
	return u.ContentType == ContentTypePDF || strings.EqualFold(filepath.Ext(u.Name), ".pdf")
}

// BaseName is the file name up to its first dot.
func (u Upload) BaseName() string {
	name := filepath.Base(u.Name)
	if i := strings.Index(name, "."); i >= 0 {
		return name[:i]
	}
	return name
}

// Export is a downloadable file produced from the active resume.
type Export struct {
	Filename    string
	ContentType string
	Body        []byte
}
