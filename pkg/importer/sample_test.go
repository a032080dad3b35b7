package importer

import (
	"context"
	"testing"
	"time"

	"resume-editor/internal/domain"
	"resume-editor/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleImporter_Parse(t *testing.T) {
	testCases := []struct {
		name     string
		upload   domain.Upload
		wantName string
	}{
		{name: "pdf", upload: domain.Upload{Name: "jane.pdf", ContentType: domain.ContentTypePDF}, wantName: "Parsed from jane"},
		{name: "docx with dots", upload: domain.Upload{Name: "cv.final.v2.docx"}, wantName: "Parsed from cv"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := NewSampleImporter(0).Parse(context.Background(), tc.upload)
			require.NoError(t, err)
			assert.Equal(t, tc.wantName, r.PersonalInfo.FullName)

			want := model.NewSample(time.Now())
			want.PersonalInfo.FullName = tc.wantName
			assert.Equal(t, want.PersonalInfo, r.PersonalInfo)
			assert.Equal(t, want.Summary, r.Summary)
			assert.Len(t, r.Experience, 2)
			assert.Len(t, r.Skills, 6)
		})
	}
}

func TestSampleImporter_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewSampleImporter(time.Hour).Parse(ctx, domain.Upload{Name: "a.pdf"})
	assert.ErrorIs(t, err, context.Canceled)
}
