package server

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/balintv/txt2ppt/deck"
	"github.com/balintv/txt2ppt/renderer/pptx"
	"github.com/balintv/txt2ppt/source"
	"github.com/balintv/txt2ppt/style"
)

type API struct {
	cfg  Config
	deck deck.Options
	log  *slog.Logger
}

func NewAPI(cfg Config, opts deck.Options, logger *slog.Logger) *API {
	return &API{cfg: cfg, deck: opts, log: logger}
}

func registerRoutes(r *gin.Engine, api *API) {
	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/health", api.handleHealth)
		apiGroup.GET("/options", api.handleOptions)
		apiGroup.POST("/decks", api.handleCreateDeck)
	}
}

// form fields that are not style overrides
var reservedFields = map[string]bool{"file": true, "path": true, "style": true}

func (a *API) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (a *API) handleOptions(c *gin.Context) {
	c.JSON(http.StatusOK, style.Default())
}

func (a *API) handleCreateDeck(c *gin.Context) {
	doc, err := a.readSource(c)
	if err != nil {
		respondError(c, statusFor(err), err)
		return
	}

	overrides := make(map[string]string)
	for key, values := range c.Request.PostForm {
		if reservedFields[key] || len(values) == 0 {
			continue
		}
		overrides[key] = values[len(values)-1]
	}
	var sheet io.Reader
	if text := c.PostForm("style"); strings.TrimSpace(text) != "" {
		sheet = strings.NewReader(text)
	}
	opts, err := style.Resolve(sheet, overrides)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	out, err := deck.Generate(doc, opts, a.deck)
	if err != nil {
		a.log.Error("deck generation failed", "source", doc.Name, "error", err)
		respondError(c, statusFor(err), err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="slides.pptx"`)
	c.Header("X-Slide-Count", strconv.Itoa(out.Slides))
	c.Header("X-Blank-Slide-Count", strconv.Itoa(out.BlankSlides))
	c.Data(http.StatusOK, pptx.ContentType, out.Data)
}

// readSource takes the uploaded file, or the path field when path sources
// are enabled.
func (a *API) readSource(c *gin.Context) (*source.Document, error) {
	fileHeader, err := c.FormFile("file")
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return nil, err
	case err == nil:
		upload, err := fileHeader.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: open upload: %v", source.ErrSourceUnavailable, err)
		}
		defer upload.Close()
		return source.FromReader(fileHeader.Filename, upload, a.cfg.MaxUploadBytes)
	}

	path := strings.TrimSpace(c.PostForm("path"))
	if path == "" {
		return nil, fmt.Errorf("%w: missing file upload", source.ErrSourceUnavailable)
	}
	if !a.cfg.AllowPathSources {
		return nil, fmt.Errorf("%w: path sources are disabled", source.ErrSourceUnavailable)
	}
	return source.FromPath(path, a.cfg.SourceDir)
}

func statusFor(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, source.ErrSourceUnavailable),
		errors.Is(err, source.ErrUnsupportedSpreadsheet),
		errors.Is(err, style.ErrInvalidOption),
		errors.Is(err, style.ErrOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, status int, err error) {
	respondMessage(c, status, err.Error())
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
