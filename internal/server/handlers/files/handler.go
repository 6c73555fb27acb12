package files

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/apiarycd/revisr/internal/files"
	"github.com/apiarycd/revisr/internal/git"
	"github.com/apiarycd/revisr/internal/paging"
	"github.com/apiarycd/revisr/internal/server/handlers"
	"github.com/apiarycd/revisr/internal/server/validation"
	"github.com/apiarycd/revisr/internal/status"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const diffPath = "/api/v1/files/diff"

type Handler struct {
	filesSvc *files.Service

	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(filesSvc *files.Service, validator *validator.Validate, logger *zap.Logger) handler.Handler {
	return &Handler{
		filesSvc: filesSvc,

		validator: validator,
		logger:    logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/files")

	r.Use(h.errorsHandler)
	r.Get("/pending", h.pending)
	r.Get("/diff", validation.DecorateWithQueryEx(h.validator, h.diff))
}

//	@Summary		List pending files
//	@Description	Uncommitted changes in the working tree, one page at a time
//	@Tags			files
//	@Produce		json
//	@Param			page	query		int	false	"Page number, clamped to the available range"
//	@Success		200		{object}	handlers.PageResponse[FileResponse]
//	@Failure		502		{object}	fiberfx.ErrorResponse
//	@Router			/files/pending [get]
//
// List pending files.
func (h *Handler) pending(c *fiber.Ctx) error {
	page, err := h.filesSvc.Pending(c.Context(), paging.ParsePage(c.Query("page")))
	if err != nil {
		return fmt.Errorf("failed to list pending files: %w", err)
	}

	return c.JSON(handlers.NewPageResponse(page, ToResponse))
}

func (h *Handler) diff(c *fiber.Ctx, req *DiffQuery) error {
	diff, err := h.filesSvc.Diff(c.Context(), req.File)
	if err != nil {
		return fmt.Errorf("failed to diff file: %w", err)
	}

	return c.JSON(DiffResponse{
		File:  diff.File,
		Lines: diff.Lines,
	})
}

func (h *Handler) errorsHandler(c *fiber.Ctx) error {
	err := c.Next()
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, git.ErrInvalidArgument):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, git.ErrProcessFailed):
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	}

	return err //nolint:wrapcheck //already wrapped
}

// ToResponse maps a status entry to its API shape. Only kinds with a HEAD
// version get a diff link.
func ToResponse(entry status.Entry) FileResponse {
	response := FileResponse{
		Path:     entry.Path,
		Status:   entry.Kind.Label(),
		Kind:     string(entry.Kind),
		DiffLink: "",
	}
	if entry.Kind.Linkable() {
		response.DiffLink = diffPath + "?" + url.Values{"file": {entry.Path}}.Encode()
	}

	return response
}
