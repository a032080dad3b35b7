package usecase

import (
	"context"
	"time"

	"resume-editor/internal/domain"
	"resume-editor/internal/model"
)

//go:generate mockgen -source=types.go -destination=mocks/providers.mock.go -package=mocks

// Enhancer returns replacement text for a section. The text it gets has no
// guaranteed relationship with the answer.
type Enhancer interface {
	Enhance(ctx context.Context, section model.Section, text string) (string, error)
}

// Importer turns an uploaded file into a complete resume or fails.
type Importer interface {
	Parse(ctx context.Context, upload domain.Upload) (model.Resume, error)
}

// ResumeRepo is the persistence adapter for the single document slot.
type ResumeRepo interface {
	Save(ctx context.Context, r model.Resume) (model.Resume, error)
	Load(ctx context.Context) (model.Resume, bool)
	Clear(ctx context.Context) error
}

type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// EnhanceRequest asks for one section to be rewritten. Target selects the
// experience entry that receives the result; blank means the first entry.
type EnhanceRequest struct {
	Section model.Section `json:"section"`
	Text    string        `json:"text"`
	Target  string        `json:"target,omitempty"`
}

// Mode is what the editor surface shows.
type Mode string

const (
	ModeAwaitingFile Mode = "awaiting-file"
	ModeEditing      Mode = "editing"
)

// Status is a snapshot of the editor flags.
type Status struct {
	Mode         Mode       `json:"mode"`
	HasDocument  bool       `json:"hasDocument"`
	Uploading    bool       `json:"uploading"`
	Enhancing    bool       `json:"enhancing"`
	Saving       bool       `json:"saving"`
	LastModified *time.Time `json:"lastModified,omitempty"`
}
