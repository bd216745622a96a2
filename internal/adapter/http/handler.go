// Package http exposes the editor and the public résumé over HTTP.
package http

import (
	"errors"
	"io"
	"mime/multipart"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"cv-builder/internal/form"
	"cv-builder/internal/model"
	"cv-builder/internal/render"
	"cv-builder/internal/usecase"
)

type Handler struct {
	builder   *usecase.Builder
	projector *render.Projector
	exporter  *usecase.PDFExporter
	tplDir    string
	log       *zap.Logger
}

func NewHandler(builder *usecase.Builder, projector *render.Projector, exporter *usecase.PDFExporter, tplDir string, log *zap.Logger) *Handler {
	return &Handler{
		builder:   builder,
		projector: projector,
		exporter:  exporter,
		tplDir:    tplDir,
		log:       log,
	}
}

// RegisterRoutes wires every route onto the app.
func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/", h.Dashboard)
	app.Post("/save", h.Save)
	app.Post("/sections/:section/items", h.AddItem)
	app.Delete("/sections/:section/items/:index", h.RemoveItem)
	app.Get("/export", h.Export)
	app.Post("/import", h.Import)
	app.Post("/uploads/photo", h.UploadPhoto)
	app.Post("/uploads/certificate", h.UploadCertificate)
	app.Get("/resume", h.Resume)
	app.Get("/preview", h.Resume)
	app.Get("/resume/pdf", h.GeneratePDF)
	app.Get("/artifacts/:id", h.DownloadArtifact)
	app.Delete("/artifacts/:id", h.DismissArtifact)
	app.Get("/score", h.Score)
	app.Static("/static", h.tplDir)
}

// Dashboard renders the editor populated from the stored document.
func (h *Handler) Dashboard(c *fiber.Ctx) error {
	doc := h.builder.LoadOrDefault(c.Context())
	page, err := h.projector.Dashboard(doc, c.Query("saved") == "1")
	if err != nil {
		return h.fail(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(page)
}

// Save collects the posted form into a document snapshot and persists it.
// Silent saves (design changes, autosave before list mutations) answer with
// the score instead of redirecting.
func (h *Handler) Save(c *fiber.Ctx) error {
	_, score, err := h.builder.SaveForm(c.Context(), postedValues(c))
	if err != nil {
		return h.fail(c, err)
	}
	if c.Query("silent") == "1" {
		return c.JSON(fiber.Map{"percent": score.Percent, "band": score.Band})
	}
	return c.Redirect("/?saved=1", fiber.StatusSeeOther)
}

// AddItem appends a blank entry to a repeatable section.
func (h *Handler) AddItem(c *fiber.Ctx) error {
	section, err := form.ParseSection(c.Params("section"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	doc, err := h.builder.AddSectionItem(c.Context(), section)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"count": sectionLen(doc, section)})
}

// RemoveItem deletes the entry at :index from a repeatable section.
func (h *Handler) RemoveItem(c *fiber.Ctx) error {
	section, err := form.ParseSection(c.Params("section"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid index"})
	}
	doc, err := h.builder.RemoveSectionItem(c.Context(), section, index)
	if err != nil {
		if errors.Is(err, form.ErrIndexOutOfRange) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"count": sectionLen(doc, section)})
}

// Export streams the document as a downloadable JSON backup.
func (h *Handler) Export(c *fiber.Ctx) error {
	data, err := h.builder.ExportBackup(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+usecase.BackupFilename+`"`)
	return c.Send(data)
}

// Import replaces the document with an uploaded backup after validating it.
func (h *Handler) Import(c *fiber.Ctx) error {
	file, err := c.FormFile("backup")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing backup file"})
	}
	raw, err := readMultipart(file)
	if err != nil {
		return h.fail(c, err)
	}
	if _, err := h.builder.ImportBackup(c.Context(), raw); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Redirect("/?saved=1", fiber.StatusSeeOther)
}

// UploadPhoto encodes a profile photo as a data URL. Images only.
func (h *Handler) UploadPhoto(c *fiber.Ctx) error {
	return h.upload(c, true)
}

// UploadCertificate encodes a certificate file as a data URL. Any type.
func (h *Handler) UploadCertificate(c *fiber.Ctx) error {
	return h.upload(c, false)
}

func (h *Handler) upload(c *fiber.Ctx, imageOnly bool) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing file"})
	}
	if file.Size > usecase.MaxUploadSize {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{"error": usecase.ErrFileTooLarge.Error()})
	}
	raw, err := readMultipart(file)
	if err != nil {
		return h.fail(c, err)
	}
	data, err := usecase.EncodeUpload(file.Header.Get(fiber.HeaderContentType), raw, imageOnly)
	switch {
	case errors.Is(err, usecase.ErrFileTooLarge):
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, usecase.ErrNotAnImage):
		return c.Status(fiber.StatusUnsupportedMediaType).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"data": data})
}

// Resume renders the public projection of the document.
func (h *Handler) Resume(c *fiber.Ctx) error {
	doc := h.builder.LoadOrDefault(c.Context())
	page, err := h.projector.PublicPage(doc)
	if err != nil {
		return h.fail(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(page)
}

// GeneratePDF renders the résumé to a PDF artifact. The editor asks for the
// artifact id as JSON and embeds the inline preview itself; plain navigation
// is redirected to the preview.
func (h *Handler) GeneratePDF(c *fiber.Ctx) error {
	id, err := h.exporter.Generate(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	if c.Query("json") == "1" {
		return c.JSON(fiber.Map{"id": id})
	}
	return c.Redirect("/artifacts/"+id, fiber.StatusSeeOther)
}

// DownloadArtifact serves a generated PDF by id: inline for the preview step,
// as a named download when saved. Saving consumes the artifact so repeated
// exports do not pile up in memory.
func (h *Handler) DownloadArtifact(c *fiber.Ctx) error {
	id := c.Params("id")
	data, ok := h.exporter.Artifacts().Get(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "artifact not found"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	if c.Query("download") == "1" {
		h.exporter.Artifacts().Release(id)
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+usecase.PDFFilename+`"`)
	} else {
		c.Set(fiber.HeaderContentDisposition, "inline")
	}
	return c.Send(data)
}

// DismissArtifact releases a previewed PDF without saving it.
func (h *Handler) DismissArtifact(c *fiber.Ctx) error {
	h.exporter.Artifacts().Release(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

// Score answers with the current strength score.
func (h *Handler) Score(c *fiber.Ctx) error {
	score := h.builder.Score(c.Context())
	return c.JSON(fiber.Map{"percent": score.Percent, "band": score.Band})
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	h.log.Error("request failed",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
}

// postedValues converts the urlencoded body into url.Values, keeping repeated
// keys (achievements, technologies) in posted order.
func postedValues(c *fiber.Ctx) url.Values {
	values := url.Values{}
	c.Request().PostArgs().VisitAll(func(key, value []byte) {
		values.Add(string(key), string(value))
	})
	return values
}

func readMultipart(file *multipart.FileHeader) ([]byte, error) {
	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func sectionLen(doc *model.Document, section form.Section) int {
	switch section {
	case form.SectionExperience:
		return len(doc.Experience)
	case form.SectionEducation:
		return len(doc.Education)
	case form.SectionTechnicalSkill:
		return len(doc.TechnicalSkills)
	case form.SectionSoftSkill:
		return len(doc.SoftSkills)
	case form.SectionProject:
		return len(doc.Projects)
	case form.SectionCertification:
		return len(doc.Certifications)
	case form.SectionAward:
		return len(doc.Awards)
	}
	return 0
}
