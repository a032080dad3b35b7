package importer

import (
	"context"
	"log/slog"
	"time"

	"resume-editor/internal/domain"
	"resume-editor/internal/model"
)

const DefaultSampleLatency = 2 * time.Second

// SampleImporter stands in for real parsing: it never reads the file and
// returns the sample resume named after the upload.
type SampleImporter struct {
	latency time.Duration
	now     func() time.Time
}

func NewSampleImporter(latency time.Duration) *SampleImporter {
	return &SampleImporter{latency: latency, now: time.Now}
}

func (s *SampleImporter) Parse(ctx context.Context, upload domain.Upload) (model.Resume, error) {
	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return model.Resume{}, ctx.Err()
		}
	}
	slog.Info("parsing resume upload", "name", upload.Name, "contentType", upload.ContentType, "size", len(upload.Data))

	r := model.NewSample(s.now())
	r.PersonalInfo.FullName = "Parsed from " + upload.BaseName()
	return r, nil
}
