package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpload_Accepted(t *testing.T) {
	testCases := []struct {
		name   string
		upload Upload
		want   bool
	}{
		{name: "pdf by type", upload: Upload{Name: "cv.bin", ContentType: ContentTypePDF}, want: true},
		{name: "docx by name", upload: Upload{Name: "CV.DOCX", ContentType: "application/octet-stream"}, want: true},
		{name: "pdf by name only", upload: Upload{Name: "cv.pdf", ContentType: "application/octet-stream"}},
		{name: "doc", upload: Upload{Name: "cv.doc", ContentType: "application/msword"}},
		{name: "text", upload: Upload{Name: "cv.txt", ContentType: "text/plain"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.upload.Accepted())
		})
	}
}

func TestUpload_BaseName(t *testing.T) {
	assert.Equal(t, "my", Upload{Name: "my.resume.pdf"}.BaseName())
	assert.Equal(t, "cv", Upload{Name: "/tmp/uploads/cv.docx"}.BaseName())
	assert.Equal(t, "noext", Upload{Name: "noext"}.BaseName())
}
