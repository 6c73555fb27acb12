package commits

import (
	"errors"
	"fmt"

	"github.com/apiarycd/revisr/internal/commits"
	"github.com/apiarycd/revisr/internal/files"
	"github.com/apiarycd/revisr/internal/paging"
	"github.com/apiarycd/revisr/internal/server/handlers"
	fileshandler "github.com/apiarycd/revisr/internal/server/handlers/files"
	"github.com/apiarycd/revisr/internal/status"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type Handler struct {
	commitsSvc *commits.Service
	filesSvc   *files.Service

	pageSize int
	logger   *zap.Logger
}

func NewHandler(commitsSvc *commits.Service, filesSvc *files.Service, config files.Config, logger *zap.Logger) handler.Handler {
	return &Handler{
		commitsSvc: commitsSvc,
		filesSvc:   filesSvc,

		pageSize: config.PageSize,
		logger:   logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/commits")

	r.Use(h.errorsHandler)
	r.Get("/", h.list)
	r.Get("/:id", h.get)
	r.Get("/:id/files", h.files)
}

//	@Summary		List commits
//	@Description	Commit records created through the API, newest first
//	@Tags			commits
//	@Produce		json
//	@Param			page	query		int	false	"Page number"
//	@Success		200		{object}	handlers.PageResponse[CommitResponse]
//	@Router			/commits [get]
//
// List commits.
func (h *Handler) list(c *fiber.Ctx) error {
	page, err := h.commitsSvc.List(c.Context(), paging.ParsePage(c.Query("page")), h.pageSize)
	if err != nil {
		return fmt.Errorf("failed to list commits: %w", err)
	}

	return c.JSON(handlers.NewPageResponse(page, toResponse))
}

func (h *Handler) get(c *fiber.Ctx) error {
	id, err := getRecordID(c)
	if err != nil {
		return err
	}

	record, err := h.commitsSvc.Get(c.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to get commit: %w", err)
	}

	return c.JSON(CommitDetailsResponse{
		CommitResponse: toResponse(*record),
		Files: lo.Map(record.Files, func(entry status.Entry, _ int) fileshandler.FileResponse {
			return toFileResponse(entry)
		}),
	})
}

func (h *Handler) files(c *fiber.Ctx) error {
	id, err := getRecordID(c)
	if err != nil {
		return err
	}

	page, err := h.filesSvc.Committed(c.Context(), id, paging.ParsePage(c.Query("page")))
	if err != nil {
		return fmt.Errorf("failed to list committed files: %w", err)
	}

	return c.JSON(handlers.NewPageResponse(page, toFileResponse))
}

func (h *Handler) errorsHandler(c *fiber.Ctx) error {
	err := c.Next()
	if err == nil {
		return nil
	}

	if errors.Is(err, commits.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return err //nolint:wrapcheck //already wrapped
}

func getRecordID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.UUID{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return id, nil
}

func toResponse(record commits.Record) CommitResponse {
	return CommitResponse{
		ID:         record.ID,
		Title:      record.Title,
		Hash:       record.Hash,
		Branch:     record.Branch,
		FilesCount: len(record.Files),
		CreatedAt:  record.CreatedAt,
	}
}

// toFileResponse maps a committed file. Diffs run against HEAD, so committed
// entries carry no diff link.
func toFileResponse(entry status.Entry) fileshandler.FileResponse {
	return fileshandler.FileResponse{
		Path:     entry.Path,
		Status:   entry.Kind.Label(),
		Kind:     string(entry.Kind),
		DiffLink: "",
	}
}
