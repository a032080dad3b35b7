package http

import (
	"io"
	"log/slog"

	"resume-editor/internal/domain"
	"resume-editor/internal/model"
	"resume-editor/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

// MaxUploadSize bounds the multipart file read by ImportFile.
const MaxUploadSize = 10 << 20

type Handler struct {
	editor *usecase.Editor
	logger *slog.Logger
}

func NewHandler(e *usecase.Editor, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{editor: e, logger: logger}
}

// Register mounts every editor route under /resume.
func (h *Handler) Register(app fiber.Router) {
	g := app.Group("/resume")
	g.Get("/", h.GetResume)
	g.Delete("/", h.Reset)
	g.Get("/status", h.Status)
	g.Get("/review", h.Review)
	g.Post("/scratch", h.StartFromScratch)
	g.Post("/import", h.ImportFile)
	g.Post("/upload-new", h.RequestNewImport)

	g.Put("/personal-info", h.UpdatePersonalInfo)
	g.Put("/summary", h.UpdateSummary)
	g.Put("/experience", h.UpdateExperience)
	g.Put("/education", h.UpdateEducation)
	g.Put("/skills", h.UpdateSkills)

	g.Post("/experience/new", h.AddExperience)
	g.Patch("/experience/:id", h.PatchExperience)
	g.Delete("/experience/:id", h.RemoveExperience)
	g.Post("/experience/:id/achievements", h.AddAchievement)
	g.Put("/experience/:id/achievements/:index", h.SetAchievement)
	g.Delete("/experience/:id/achievements/:index", h.RemoveAchievement)
	g.Post("/education/new", h.AddEducation)
	g.Delete("/education/:id", h.RemoveEducation)
	g.Post("/skills/new", h.AddSkill)
	g.Delete("/skills/:id", h.RemoveSkill)

	g.Post("/enhance", h.RequestEnhancement)
	g.Post("/save", h.Save)
	g.Get("/export", h.Export)
	g.Get("/export/pdf", h.ExportPDF)
}

func errorJSON(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// current answers with the active resume, or 409 when there is none.
func (h *Handler) current(c *fiber.Ctx, applied bool) error {
	if !applied {
		if !h.editor.HasDocument() {
			return errorJSON(c, fiber.StatusConflict, "no active resume")
		}
		return errorJSON(c, fiber.StatusUnprocessableEntity, "change not applied")
	}
	r, ok := h.editor.Resume()
	if !ok {
		return errorJSON(c, fiber.StatusConflict, "no active resume")
	}
	return c.JSON(r)
}

func (h *Handler) GetResume(c *fiber.Ctx) error {
	r, ok := h.editor.Resume()
	if !ok {
		return errorJSON(c, fiber.StatusNotFound, "no active resume")
	}
	return c.JSON(r)
}

func (h *Handler) Status(c *fiber.Ctx) error {
	return c.JSON(h.editor.Status())
}

func (h *Handler) Review(c *fiber.Ctx) error {
	if !h.editor.HasDocument() {
		return errorJSON(c, fiber.StatusConflict, "no active resume")
	}
	return c.JSON(fiber.Map{"notices": h.editor.Review()})
}

func (h *Handler) StartFromScratch(c *fiber.Ctx) error {
	return c.Status(fiber.StatusCreated).JSON(h.editor.StartFromScratch())
}

func (h *Handler) ImportFile(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "missing file")
	}
	if fh.Size > MaxUploadSize {
		return errorJSON(c, fiber.StatusRequestEntityTooLarge, "file too large")
	}
	f, err := fh.Open()
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "unreadable file")
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "unreadable file")
	}

	upload := domain.Upload{Name: fh.Filename, ContentType: fh.Header.Get("Content-Type"), Data: data}
	if !upload.Accepted() {
		return errorJSON(c, fiber.StatusUnsupportedMediaType, "only PDF or DOCX files are accepted")
	}
	if !h.editor.ImportFile(c.UserContext(), upload) {
		return errorJSON(c, fiber.StatusUnprocessableEntity, "import failed")
	}
	return h.current(c, true)
}

func (h *Handler) RequestNewImport(c *fiber.Ctx) error {
	h.editor.RequestNewImport()
	return c.JSON(h.editor.Status())
}

func (h *Handler) Reset(c *fiber.Ctx) error {
	h.editor.Reset(c.UserContext())
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) UpdatePersonalInfo(c *fiber.Ctx) error {
	var info model.PersonalInfo
	if err := c.BodyParser(&info); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "invalid payload")
	}
	return h.current(c, h.editor.UpdatePersonalInfo(info))
}

func (h *Handler) UpdateSummary(c *fiber.Ctx) error {
	var req struct {
		Summary string `json:"summary"`
	}
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "invalid payload")
	}
	return h.current(c, h.editor.UpdateSummary(req.Summary))
}

func (h *Handler) UpdateExperience(c *fiber.Ctx) error {
	var list []model.Experience
	if err := c.BodyParser(&list); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "invalid payload")
	}
	return h.current(c, h.editor.UpdateExperience(list))
}

func (h *Handler) UpdateEducation(c *fiber.Ctx) error {
	var list []model.Education
	if err := c.BodyParser(&list); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "invalid payload")
	}
	return h.current(c, h.editor.UpdateEducation(list))
}

func (h *Handler) UpdateSkills(c *fiber.Ctx) error {
	var list []model.Skill
	if err := c.BodyParser(&list); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "invalid payload")
	}
	return h.current(c, h.editor.UpdateSkills(list))
}

func (h *Handler) AddExperience(c *fiber.Ctx) error {
	entry, ok := h.editor.AddExperience()
	if !ok {
		return errorJSON(c, fiber.StatusConflict, "no active resume")
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (h *Handler) PatchExperience(c *fiber.Ctx) error {
	var p model.ExperiencePatch
	if err := c.BodyParser(&p); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "invalid payload")
	}
	return h.current(c, h.editor.PatchExperience(c.Params("id"), p))
}

func (h *Handler) RemoveExperience(c *fiber.Ctx) error {
	return h.current(c, h.editor.RemoveExperience(c.Params("id")))
}

func (h *Handler) AddAchievement(c *fiber.Ctx) error {
	return h.current(c, h.editor.AddAchievement(c.Params("id")))
}

func (h *Handler) SetAchievement(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "invalid index")
	}
	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "invalid payload")
	}
	return h.current(c, h.editor.SetAchievement(c.Params("id"), index, req.Text))
}

func (h *Handler) RemoveAchievement(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "invalid index")
	}
	return h.current(c, h.editor.RemoveAchievement(c.Params("id"), index))
}

func (h *Handler) AddEducation(c *fiber.Ctx) error {
	entry, ok := h.editor.AddEducation()
	if !ok {
		return errorJSON(c, fiber.StatusConflict, "no active resume")
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (h *Handler) RemoveEducation(c *fiber.Ctx) error {
	return h.current(c, h.editor.RemoveEducation(c.Params("id")))
}

func (h *Handler) AddSkill(c *fiber.Ctx) error {
	entry, ok := h.editor.AddSkill()
	if !ok {
		return errorJSON(c, fiber.StatusConflict, "no active resume")
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (h *Handler) RemoveSkill(c *fiber.Ctx) error {
	return h.current(c, h.editor.RemoveSkill(c.Params("id")))
}

func (h *Handler) RequestEnhancement(c *fiber.Ctx) error {
	var req usecase.EnhanceRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "invalid payload")
	}
	if !req.Section.Known() {
		return errorJSON(c, fiber.StatusBadRequest, "unknown section")
	}
	if !h.editor.HasDocument() {
		return errorJSON(c, fiber.StatusConflict, "no active resume")
	}
	applied := h.editor.RequestEnhancement(c.UserContext(), req)
	r, ok := h.editor.Resume()
	if !ok {
		return errorJSON(c, fiber.StatusConflict, "no active resume")
	}
	return c.JSON(fiber.Map{"applied": applied, "resume": r})
}

func (h *Handler) Save(c *fiber.Ctx) error {
	if !h.editor.HasDocument() {
		return errorJSON(c, fiber.StatusConflict, "no active resume")
	}
	if !h.editor.Save(c.UserContext()) {
		return errorJSON(c, fiber.StatusInternalServerError, "save failed")
	}
	return c.JSON(h.editor.Status())
}

func (h *Handler) Export(c *fiber.Ctx) error {
	out, ok := h.editor.Export()
	if !ok {
		return errorJSON(c, fiber.StatusConflict, "no active resume")
	}
	return sendExport(c, out)
}

func (h *Handler) ExportPDF(c *fiber.Ctx) error {
	out, err := h.editor.ExportPDF(c.UserContext())
	switch {
	case errors.Is(err, usecase.ErrNoRenderer):
		return errorJSON(c, fiber.StatusServiceUnavailable, err.Error())
	case errors.Is(err, usecase.ErrNoDocument):
		return errorJSON(c, fiber.StatusConflict, err.Error())
	case err != nil:
		h.logger.Error("pdf export failed", "error", err)
		return errorJSON(c, fiber.StatusBadGateway, "pdf rendering failed")
	}
	return sendExport(c, out)
}

func sendExport(c *fiber.Ctx, out domain.Export) error {
	c.Attachment(out.Filename)
	c.Set(fiber.HeaderContentType, out.ContentType)
	return c.Send(out.Body)
}
