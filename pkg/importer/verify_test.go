package importer

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"testing"

	"resume-editor/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// onePagePDF assembles a minimal single page PDF with a valid xref table.
func onePagePDF() []byte {
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>",
	}
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

// minimalDOCX zips a word/document.xml with a single paragraph.
func minimalDOCX(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body><w:p><w:r><w:t>Jane Roe</w:t></w:r></w:p></w:body></w:document>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestVerify_AcceptsReadableFiles(t *testing.T) {
	testCases := []struct {
		name   string
		upload func(t *testing.T) domain.Upload
	}{
		{
			name: "pdf by content type",
			upload: func(t *testing.T) domain.Upload {
				return domain.Upload{Name: "cv", ContentType: domain.ContentTypePDF, Data: onePagePDF()}
			},
		},
		{
			name: "pdf by extension",
			upload: func(t *testing.T) domain.Upload {
				return domain.Upload{Name: "cv.PDF", Data: onePagePDF()}
			},
		},
		{
			name: "docx",
			upload: func(t *testing.T) domain.Upload {
				return domain.Upload{Name: "cv.docx", ContentType: domain.ContentTypeDOCX, Data: minimalDOCX(t)}
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.NoError(t, Verify(tc.upload(t)))
		})
	}
}

func TestVerifying_CallsNextOnSuccess(t *testing.T) {
	v := NewVerifying(NewSampleImporter(0))
	r, err := v.Parse(context.Background(), domain.Upload{Name: "jane.docx", Data: minimalDOCX(t)})
	require.NoError(t, err)
	assert.Equal(t, "Parsed from jane", r.PersonalInfo.FullName)
}

func TestVerify_RejectsGarbage(t *testing.T) {
	testCases := []struct {
		name    string
		upload  domain.Upload
		wantErr error
	}{
		{
			name:    "fake pdf",
			upload:  domain.Upload{Name: "cv.pdf", ContentType: domain.ContentTypePDF, Data: []byte("not a pdf")},
			wantErr: ErrUnreadablePDF,
		},
		{
			name:    "fake docx",
			upload:  domain.Upload{Name: "cv.docx", Data: []byte("not a zip")},
			wantErr: ErrUnreadableDOCX,
		},
		{
			name:    "text file",
			upload:  domain.Upload{Name: "cv.txt", ContentType: "text/plain"},
			wantErr: ErrUnsupported,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, Verify(tc.upload), tc.wantErr)
		})
	}
}

func TestVerifying_DoesNotCallNextOnFailure(t *testing.T) {
	next := NewSampleImporter(0)
	v := NewVerifying(next)
	_, err := v.Parse(context.Background(), domain.Upload{Name: "cv.pdf", ContentType: domain.ContentTypePDF, Data: []byte("%PDF-broken")})
	assert.ErrorIs(t, err, ErrUnreadablePDF)
}
