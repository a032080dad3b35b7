package repository

import (
	"context"
	"log/slog"
	"time"

	"resume-editor/internal/model"

	"github.com/pkg/errors"
)

// DefaultKey is the slot the active resume lives under.
const DefaultKey = "resume-data"

// ResumeRepo persists the single active resume in one Store slot.
type ResumeRepo struct {
	store  Store
	key    string
	logger *slog.Logger
	now    func() time.Time
}

type Option func(*ResumeRepo)

func WithKey(key string) Option {
	return func(r *ResumeRepo) {
		if key != "" {
			r.key = key
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(r *ResumeRepo) { r.logger = l }
}

// WithClock replaces time.Now, used by tests.
func WithClock(now func() time.Time) Option {
	return func(r *ResumeRepo) { r.now = now }
}

func NewResumeRepo(store Store, opts ...Option) *ResumeRepo {
	r := &ResumeRepo{store: store, key: DefaultKey, logger: slog.Default(), now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Save stamps lastModified and overwrites the slot. The stamp never moves
// backwards relative to the resume's previous value. A resume that fails the
// schema is not written and the error wraps model.ErrInvalidDocument.
func (r *ResumeRepo) Save(ctx context.Context, resume model.Resume) (model.Resume, error) {
	out := resume.Clone()
	stamp := r.now().UTC()
	if !stamp.After(out.LastModified) {
		stamp = out.LastModified.UTC().Add(time.Nanosecond)
	}
	out.LastModified = stamp

	b, err := model.Encode(out, false)
	if err != nil {
		return resume, errors.Wrap(err, "encode resume")
	}
	// never write what Load would reject
	if err := model.Validate(b); err != nil {
		return resume, err
	}
	if err := r.store.Set(ctx, r.key, string(b)); err != nil {
		return resume, err
	}
	r.logger.Debug("resume saved", "key", r.key, "lastModified", stamp)
	return out, nil
}

// Load returns the stored resume. Missing, unreadable and corrupt slots are
// all reported as absent; the cause only goes to the logger.
func (r *ResumeRepo) Load(ctx context.Context) (model.Resume, bool) {
	raw, err := r.store.Get(ctx, r.key)
	if errors.Is(err, ErrKeyNotFound) {
		return model.Resume{}, false
	}
	if err != nil {
		r.logger.Error("read stored resume", "key", r.key, "error", err)
		return model.Resume{}, false
	}
	resume, err := model.Decode([]byte(raw))
	if err != nil {
		r.logger.Error("stored resume is corrupt", "key", r.key, "error", err)
		return model.Resume{}, false
	}
	return resume, true
}

func (r *ResumeRepo) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, r.key)
}
