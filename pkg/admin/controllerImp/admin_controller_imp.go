package controllerImp

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"ribbon/pkg/extract"
	"ribbon/pkg/kb/service"
)

type AdminCtrl struct {
	s service.KBService
}

func New(s service.KBService) *AdminCtrl { return &AdminCtrl{s: s} }

type faqReq struct {
	Keyword string `json:"keyword"`
	Answer  string `json:"answer"`
}

func (h *AdminCtrl) ListFAQ(c echo.Context) error {
	es, err := h.s.ListFAQ()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, es)
}

func (h *AdminCtrl) PutFAQ(c echo.Context) error {
	var req faqReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json: " + err.Error()})
	}
	if err := h.s.PutFAQ(req.Keyword, req.Answer); err != nil {
		return faqError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"keyword": req.Keyword})
}

// ReplaceFAQ renames a keyword (or rewrites its answer under a new one).
// The path parameter is the keyword being replaced.
func (h *AdminCtrl) ReplaceFAQ(c echo.Context) error {
	old := c.Param("keyword")
	var req faqReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json: " + err.Error()})
	}
	if err := h.s.ReplaceFAQ(old, req.Keyword, req.Answer); err != nil {
		return faqError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"keyword": req.Keyword})
}

func (h *AdminCtrl) DeleteFAQ(c echo.Context) error {
	if err := h.s.DeleteFAQ(c.Param("keyword")); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

func faqError(c echo.Context, err error) error {
	if errors.Is(err, service.ErrInvalidEntry) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func (h *AdminCtrl) Questions(c echo.Context) error {
	qs, err := h.s.Questions()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, qs)
}

func (h *AdminCtrl) DeleteQuestion(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "id must be numeric"})
	}
	if err := h.s.DeleteQuestion(uint(id)); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminCtrl) Document(c echo.Context) error {
	doc, err := h.s.Document()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"content": doc})
}

// Upload ingests a reference file; the extracted text replaces the stored
// document wholesale and the original binary is discarded.
func (h *AdminCtrl) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "file is required"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "open upload: " + err.Error()})
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "read upload: " + err.Error()})
	}

	n, err := h.s.IngestDocument(fh.Filename, data)
	if err != nil {
		return ingestError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{"chars": n})
}

func (h *AdminCtrl) IngestURL(c echo.Context) error {
	var body struct {
		URL string `json:"url"`
	}
	if err := c.Bind(&body); err != nil || strings.TrimSpace(body.URL) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "url required"})
	}
	n, err := h.s.IngestURL(body.URL)
	if err != nil {
		return ingestError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{"chars": n})
}

func ingestError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, extract.ErrUnsupported):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, extract.ErrExtraction):
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
