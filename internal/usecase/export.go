package usecase

import (
	"bytes"
	"context"
	_ "embed"
	"html/template"
	"regexp"
	"strings"
	"time"

	"resume-editor/internal/domain"
	"resume-editor/internal/model"

	"github.com/pkg/errors"
)

var (
	ErrNoDocument = errors.New("no active resume")
	ErrNoRenderer = errors.New("pdf rendering is not configured")
)

// whitespaceRun matches the same characters as an ECMAScript \s run.
var whitespaceRun = regexp.MustCompile(`[\s\v\p{Zs}\x{2028}\x{2029}\x{feff}]+`)

//go:embed templates/resume.html
var resumeTemplate string

var tpl = template.Must(template.New("resume").Funcs(template.FuncMap{
	"contacts": func(p model.PersonalInfo) []string {
		var out []string
		for _, v := range []string{p.Email, p.Phone, p.Location, p.LinkedIn, p.Website} {
			if v != "" {
				out = append(out, v)
			}
		}
		return out
	},
	"period": func(start, end string, current bool) string {
		switch {
		case current:
			end = "Present"
		case end == "":
			return start
		}
		if start == "" {
			return end
		}
		return start + " – " + end
	},
	"nonBlank": func(items []string) []string {
		var out []string
		for _, s := range items {
			if strings.TrimSpace(s) != "" {
				out = append(out, s)
			}
		}
		return out
	},
	"groups": model.GroupSkillsByCategory,
}).Parse(resumeTemplate))

// Export serializes the active resume as pretty JSON for download.
func (e *Editor) Export() (domain.Export, bool) {
	r, ok := e.Resume()
	if !ok {
		return domain.Export{}, false
	}
	body, err := model.Encode(r, true)
	if err != nil {
		e.logger.Error("encode export failed", "error", err)
		return domain.Export{}, false
	}
	return domain.Export{
		Filename:    ExportFilename(r, e.now(), "json"),
		ContentType: domain.ContentTypeJSON,
		Body:        body,
	}, true
}

// ExportPDF prints the active resume through the configured renderer.
func (e *Editor) ExportPDF(ctx context.Context) (domain.Export, error) {
	if e.renderer == nil {
		return domain.Export{}, ErrNoRenderer
	}
	r, ok := e.Resume()
	if !ok {
		return domain.Export{}, ErrNoDocument
	}
	html, err := RenderHTML(r)
	if err != nil {
		return domain.Export{}, err
	}
	pdf, err := e.renderer.RenderHTMLToPDF(ctx, html)
	if err != nil {
		return domain.Export{}, errors.Wrap(err, "render pdf")
	}
	return domain.Export{
		Filename:    ExportFilename(r, e.now(), "pdf"),
		ContentType: domain.ContentTypePDF,
		Body:        pdf,
	}, nil
}

// RenderHTML renders the printable HTML page for r.
func RenderHTML(r model.Resume) (string, error) {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, r); err != nil {
		return "", errors.Wrap(err, "execute resume template")
	}
	return buf.String(), nil
}

// ExportFilename builds resume-<slug>-<YYYY-MM-DD>.<ext>. The slug is the
// full name with every whitespace run turned into a dash, lower-cased. A
// blank name leaves the slug empty.
func ExportFilename(r model.Resume, now time.Time, ext string) string {
	slug := strings.ToLower(whitespaceRun.ReplaceAllString(r.PersonalInfo.FullName, "-"))
	return "resume-" + slug + "-" + now.UTC().Format("2006-01-02") + "." + ext
}
