package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"resume-editor/internal/domain"
	"resume-editor/internal/model"
)

const DefaultSaveDelay = time.Second

// Editor owns the single active resume and the flags the editing surface
// renders. Failures of providers and storage are logged and swallowed;
// results only report whether something was applied.
//
// Providers run without the lock held, so overlapping requests for the
// same operation resolve in completion order.
type Editor struct {
	repo      ResumeRepo
	enhancer  Enhancer
	importer  Importer
	renderer  Renderer
	logger    *slog.Logger
	saveDelay time.Duration
	now       func() time.Time

	// persistMu orders storage writes against Reset's clear.
	persistMu sync.Mutex

	mu           sync.RWMutex
	active       *model.Resume
	awaitingFile bool
	uploading    bool
	enhancing    bool
	saving       bool
}

type Option func(*Editor)

func WithLogger(l *slog.Logger) Option {
	return func(e *Editor) { e.logger = l }
}

// WithSaveDelay sets how long the saving flag stays visible at minimum.
func WithSaveDelay(d time.Duration) Option {
	return func(e *Editor) { e.saveDelay = d }
}

// WithRenderer enables ExportPDF.
func WithRenderer(r Renderer) Option {
	return func(e *Editor) { e.renderer = r }
}

func WithClock(now func() time.Time) Option {
	return func(e *Editor) { e.now = now }
}

func NewEditor(repo ResumeRepo, enhancer Enhancer, importer Importer, opts ...Option) *Editor {
	e := &Editor{
		repo:      repo,
		enhancer:  enhancer,
		importer:  importer,
		logger:    slog.Default(),
		saveDelay: DefaultSaveDelay,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// LoadOnStart restores the persisted resume, if any.
func (e *Editor) LoadOnStart(ctx context.Context) bool {
	r, ok := e.repo.Load(ctx)
	if !ok {
		e.logger.Info("no stored resume to restore")
		return false
	}
	e.mu.Lock()
	e.active = &r
	e.mu.Unlock()
	e.logger.Info("restored stored resume", "lastModified", r.LastModified)
	return true
}

func (e *Editor) StartFromScratch() model.Resume {
	r := model.NewEmpty(e.now())
	e.mu.Lock()
	e.active = &r
	e.awaitingFile = false
	e.mu.Unlock()
	return r.Clone()
}

// ImportFile replaces the active resume with the parsed upload and
// persists it. A failed import leaves the previous document in place.
func (e *Editor) ImportFile(ctx context.Context, upload domain.Upload) bool {
	e.setFlag(&e.uploading, true)
	defer e.setFlag(&e.uploading, false)

	r, err := e.importer.Parse(ctx, upload)
	if err != nil {
		e.logger.Error("import failed", "file", upload.Name, "error", err)
		return false
	}
	r = normalize(r)
	if err := validate(r); err != nil {
		e.logger.Error("import returned a malformed resume", "file", upload.Name, "error", err)
		return false
	}

	e.mu.Lock()
	e.active = &r
	e.awaitingFile = false
	p := e.active
	e.mu.Unlock()

	e.persist(ctx, p)
	return true
}

// Resume returns a copy of the active document.
func (e *Editor) Resume() (model.Resume, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.active == nil {
		return model.Resume{}, false
	}
	return e.active.Clone(), true
}

// Apply replaces one section of the active resume. Nothing is persisted.
// An update whose result does not pass the schema is refused.
func (e *Editor) Apply(u model.Update) bool {
	return e.edit(func(r model.Resume) (model.Resume, bool) {
		next := u.Apply(r)
		if err := validate(next); err != nil {
			e.logger.Warn("update refused", "section", u.Section(), "error", err)
			return r, false
		}
		return next, true
	})
}

func (e *Editor) UpdatePersonalInfo(info model.PersonalInfo) bool {
	return e.Apply(model.SetPersonalInfo{Info: info})
}

func (e *Editor) UpdateSummary(text string) bool {
	return e.Apply(model.SetSummary{Text: text})
}

func (e *Editor) UpdateExperience(list []model.Experience) bool {
	return e.Apply(model.SetExperience{Entries: list})
}

func (e *Editor) UpdateEducation(list []model.Education) bool {
	return e.Apply(model.SetEducation{Entries: list})
}

func (e *Editor) UpdateSkills(list []model.Skill) bool {
	return e.Apply(model.SetSkills{Entries: list})
}

// edit swaps in the resume fn returns when fn reports a change.
func (e *Editor) edit(fn func(model.Resume) (model.Resume, bool)) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.active == nil {
		return false
	}
	next, changed := fn(*e.active)
	if !changed {
		return false
	}
	e.active = &next
	return true
}

// RequestEnhancement asks the enhancer for new text and writes it to the
// section's target field, then persists. Summary replaces the summary,
// experience replaces the description of the targeted entry. Other
// sections, or a target that does not exist, change nothing. The result is
// applied to whatever document is active when the enhancer answers.
func (e *Editor) RequestEnhancement(ctx context.Context, req EnhanceRequest) bool {
	if !e.HasDocument() {
		return false
	}
	e.setFlag(&e.enhancing, true)
	defer e.setFlag(&e.enhancing, false)

	text, err := e.enhancer.Enhance(ctx, req.Section, req.Text)
	if err != nil {
		e.logger.Error("enhancement failed", "section", req.Section, "error", err)
		return false
	}

	e.mu.Lock()
	if e.active == nil {
		e.mu.Unlock()
		e.logger.Warn("enhancement resolved after reset", "section", req.Section)
		return false
	}
	next, applied := applyEnhancement(*e.active, req, text)
	e.active = &next
	p := e.active
	e.mu.Unlock()

	if !applied {
		e.logger.Info("enhancement has no target field", "section", req.Section, "target", req.Target)
	}
	e.persist(ctx, p)
	return applied
}

func applyEnhancement(r model.Resume, req EnhanceRequest, text string) (model.Resume, bool) {
	switch req.Section {
	case model.SectionSummary:
		return model.SetSummary{Text: text}.Apply(r), true
	case model.SectionExperience:
		if len(r.Experience) == 0 {
			return r, false
		}
		target := req.Target
		if target == "" {
			target = r.Experience[0].ID
		}
		list, found := model.PatchExperience(r.Experience, target, model.ExperiencePatch{Description: &text})
		if !found {
			return r, false
		}
		out := r.Clone()
		out.Experience = list
		return out, true
	}
	return r, false
}

// Save persists the active resume. The saving flag stays set for at least
// the configured save delay.
func (e *Editor) Save(ctx context.Context) bool {
	e.mu.RLock()
	p := e.active
	e.mu.RUnlock()
	if p == nil {
		return false
	}

	e.setFlag(&e.saving, true)
	defer e.setFlag(&e.saving, false)

	start := time.Now()
	ok := e.persist(ctx, p)
	if rest := e.saveDelay - time.Since(start); rest > 0 {
		timer := time.NewTimer(rest)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
		}
	}
	return ok
}

// persist writes p and carries the new lastModified into the active
// document when p is still the active one. Nothing is written once the
// editor has been reset.
func (e *Editor) persist(ctx context.Context, p *model.Resume) bool {
	e.persistMu.Lock()
	defer e.persistMu.Unlock()

	e.mu.RLock()
	reset := e.active == nil
	e.mu.RUnlock()
	if reset {
		e.logger.Warn("persist skipped after reset")
		return false
	}

	saved, err := e.repo.Save(ctx, *p)
	if err != nil {
		e.logger.Error("persist resume failed", "error", err)
		return false
	}
	e.mu.Lock()
	if e.active == p {
		next := p.Clone()
		next.LastModified = saved.LastModified
		e.active = &next
	}
	e.mu.Unlock()
	return true
}

// Reset drops the active resume and erases storage.
func (e *Editor) Reset(ctx context.Context) {
	e.persistMu.Lock()
	defer e.persistMu.Unlock()

	e.mu.Lock()
	e.active = nil
	e.awaitingFile = true
	e.mu.Unlock()
	if err := e.repo.Clear(ctx); err != nil {
		e.logger.Error("clear stored resume failed", "error", err)
	}
}

// RequestNewImport switches to awaiting a file. The document is kept until
// an import succeeds.
func (e *Editor) RequestNewImport() {
	e.setFlag(&e.awaitingFile, true)
}

func (e *Editor) HasDocument() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.active != nil
}

func (e *Editor) Status() Status {
	e.mu.RLock()
	defer e.mu.RUnlock()
	s := Status{
		Mode:        ModeEditing,
		HasDocument: e.active != nil,
		Uploading:   e.uploading,
		Enhancing:   e.enhancing,
		Saving:      e.saving,
	}
	if e.active == nil || e.awaitingFile {
		s.Mode = ModeAwaitingFile
	}
	if e.active != nil {
		lm := e.active.LastModified
		s.LastModified = &lm
	}
	return s
}

func (e *Editor) setFlag(flag *bool, v bool) {
	e.mu.Lock()
	*flag = v
	e.mu.Unlock()
}

// normalize applies the id and date rules to a resume built outside the
// editor.
func normalize(r model.Resume) model.Resume {
	out := r.Clone()
	out.Experience = model.NormalizeExperience(r.Experience)
	out.Education = model.NormalizeEducation(r.Education)
	out.Skills = model.NormalizeSkills(r.Skills)
	return out
}

func validate(r model.Resume) error {
	b, err := model.Encode(r, false)
	if err != nil {
		return err
	}
	return model.Validate(b)
}
