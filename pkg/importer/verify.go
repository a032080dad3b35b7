package importer

import (
	"bytes"
	"context"
	"strings"

	"resume-editor/internal/domain"
	"resume-editor/internal/model"

	"github.com/lukasjarosch/go-docx"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pkg/errors"
)

var (
	ErrUnreadablePDF  = errors.New("upload is not a readable PDF")
	ErrUnreadableDOCX = errors.New("upload is not a readable DOCX document")
	ErrUnsupported    = errors.New("unsupported upload type")
)

// Parser is the import provider contract Verifying wraps.
type Parser interface {
	Parse(ctx context.Context, upload domain.Upload) (model.Resume, error)
}

// Verifying rejects uploads whose bytes are not a readable PDF or DOCX
// before handing them to the wrapped parser. It does not extract text.
type Verifying struct {
	next Parser
}

func NewVerifying(next Parser) *Verifying {
	return &Verifying{next: next}
}

func (v *Verifying) Parse(ctx context.Context, upload domain.Upload) (model.Resume, error) {
	if err := Verify(upload); err != nil {
		return model.Resume{}, err
	}
	return v.next.Parse(ctx, upload)
}

// Verify checks that the upload opens as the format it claims to be.
func Verify(upload domain.Upload) error {
	switch {
	case upload.IsPDF():
		conf := pdfmodel.NewDefaultConfiguration()
		pages, err := api.PageCount(bytes.NewReader(upload.Data), conf)
		if err != nil {
			return errors.Wrap(ErrUnreadablePDF, err.Error())
		}
		if pages == 0 {
			return errors.Wrap(ErrUnreadablePDF, "document has no pages")
		}
		return nil
	case strings.HasSuffix(strings.ToLower(upload.Name), ".docx"):
		if _, err := docx.OpenBytes(upload.Data); err != nil {
			return errors.Wrap(ErrUnreadableDOCX, err.Error())
		}
		return nil
	default:
		return errors.Wrapf(ErrUnsupported, "%s (%s)", upload.Name, upload.ContentType)
	}
}
