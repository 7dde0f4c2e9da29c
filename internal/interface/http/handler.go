package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/summarize-console/internal/domain/page"
	"github.com/yanqian/summarize-console/internal/domain/trigger"
	apperrors "github.com/yanqian/summarize-console/pkg/errors"
)

// Firer starts one invocation per call.
type Firer interface {
	Fire(ctx context.Context) trigger.Invocation
}

// Handler wires the HTTP transport to the page and its trigger.
type Handler struct {
	pageSvc page.Service
	trigger Firer
	pageCfg page.Config
	logger  *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(pageSvc page.Service, source *trigger.Source, pageCfg page.Config, logger *slog.Logger) *Handler {
	return &Handler{
		pageSvc: pageSvc,
		trigger: source,
		pageCfg: pageCfg,
		logger:  logger.With("component", "http.handler"),
	}
}

type setElementRequest struct {
	Text *string `json:"text" binding:"required"`
}

// GetElement returns the current text of one element.
func (h *Handler) GetElement(c *gin.Context) {
	el, err := h.pageSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, elementError(err))
		return
	}
	c.JSON(http.StatusOK, el)
}

// SetElement replaces the text of one element.
func (h *Handler) SetElement(c *gin.Context) {
	var req setElementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	el, err := h.pageSvc.Set(c.Request.Context(), c.Param("id"), *req.Text)
	if err != nil {
		abortWithError(c, elementError(err))
		return
	}
	c.JSON(http.StatusOK, el)
}

// Trigger fires the summarize trigger and returns before the request resolves.
func (h *Handler) Trigger(c *gin.Context) {
	inv := h.trigger.Fire(c.Request.Context())
	h.logger.Info("trigger fired", "invocation_id", inv.ID.String(), "subject", subjectOf(c))
	c.JSON(http.StatusAccepted, inv)
}

// Index serves the page markup. When authRequired is set the page asks for a bearer token
// and attaches it to every control plane call.
func (h *Handler) Index(authRequired bool) gin.HandlerFunc {
	view := newIndexView(h.pageCfg, authRequired)
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, indexTemplateName, view)
	}
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func elementError(err error) *HTTPError {
	switch {
	case apperrors.IsCode(err, apperrors.CodeInvalidInput):
		return NewHTTPError(http.StatusNotFound, "unknown_element", errMessage(err), err)
	case apperrors.IsCode(err, apperrors.CodeNotFound):
		return NewHTTPError(http.StatusNotFound, "element_not_found", errMessage(err), err)
	default:
		return NewHTTPError(http.StatusInternalServerError, "page_failed", errMessage(err), err)
	}
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
