package actions

import (
	"errors"
	"fmt"

	"github.com/apiarycd/revisr/internal/actions"
	"github.com/apiarycd/revisr/internal/git"
	"github.com/apiarycd/revisr/internal/server/validation"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handler struct {
	actionsSvc *actions.Service

	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(actionsSvc *actions.Service, validator *validator.Validate, logger *zap.Logger) handler.Handler {
	return &Handler{
		actionsSvc: actionsSvc,

		validator: validator,
		logger:    logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/actions")

	r.Use(h.errorsHandler)
	r.Post("/commit", validation.DecorateWithBodyEx(h.validator, h.commit))
	r.Post("/revert", validation.DecorateWithBodyEx(h.validator, h.revert))
	r.Post("/checkout", validation.DecorateWithBodyEx(h.validator, h.checkout))
	r.Post("/discard", h.discard)
	r.Post("/push", h.push)
	r.Post("/pull", h.pull)
}

//	@Summary		Commit pending changes
//	@Description	Stages every change, commits it with the given title and pushes the current branch
//	@Tags			actions
//	@Accept			json
//	@Produce		json
//	@Param			commit	body		CommitRequest	true	"Commit request"
//	@Success		201		{object}	ActionResponse
//	@Failure		400		{object}	fiberfx.ErrorResponse
//	@Failure		502		{object}	fiberfx.ErrorResponse
//	@Router			/actions/commit [post]
//
// Commit pending changes.
func (h *Handler) commit(c *fiber.Ctx, req *CommitRequest) error {
	result, err := h.actionsSvc.Commit(c.Context(), req.Title)
	if err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	return c.Status(fiber.StatusCreated).JSON(h.toResponse(result))
}

//	@Summary		Revert to a commit
//	@Description	Resets the branch to the commit and records the reversal as a new commit
//	@Tags			actions
//	@Accept			json
//	@Produce		json
//	@Param			revert	body		RevertRequest	true	"Revert request"
//	@Success		200		{object}	ActionResponse
//	@Failure		400		{object}	fiberfx.ErrorResponse
//	@Failure		502		{object}	fiberfx.ErrorResponse
//	@Router			/actions/revert [post]
//
// Revert to a commit.
func (h *Handler) revert(c *fiber.Ctx, req *RevertRequest) error {
	result, err := h.actionsSvc.Revert(c.Context(), req.CommitHash)
	if err != nil {
		return fmt.Errorf("failed to revert: %w", err)
	}

	return c.JSON(h.toResponse(result))
}

//	@Summary		Check out a branch
//	@Description	Discards uncommitted changes and switches to the branch
//	@Tags			actions
//	@Accept			json
//	@Produce		json
//	@Param			checkout	body		CheckoutRequest	true	"Checkout request"
//	@Success		200			{object}	ActionResponse
//	@Failure		400			{object}	fiberfx.ErrorResponse
//	@Failure		502			{object}	fiberfx.ErrorResponse
//	@Router			/actions/checkout [post]
//
// Check out a branch.
func (h *Handler) checkout(c *fiber.Ctx, req *CheckoutRequest) error {
	result, err := h.actionsSvc.Checkout(c.Context(), req.Branch)
	if err != nil {
		return fmt.Errorf("failed to check out: %w", err)
	}

	return c.JSON(h.toResponse(result))
}

// Destructive: uncommitted changes to tracked files are lost.
func (h *Handler) discard(c *fiber.Ctx) error {
	result, err := h.actionsSvc.Discard(c.Context())
	if err != nil {
		return fmt.Errorf("failed to discard: %w", err)
	}

	return c.JSON(h.toResponse(result))
}

// Destructive: runs reset --hard HEAD before pushing.
func (h *Handler) push(c *fiber.Ctx) error {
	result, err := h.actionsSvc.Push(c.Context())
	if err != nil {
		return fmt.Errorf("failed to push: %w", err)
	}

	return c.JSON(h.toResponse(result))
}

// Destructive: runs reset --hard HEAD before pulling.
func (h *Handler) pull(c *fiber.Ctx) error {
	result, err := h.actionsSvc.Pull(c.Context())
	if err != nil {
		return fmt.Errorf("failed to pull: %w", err)
	}

	return c.JSON(h.toResponse(result))
}

func (h *Handler) errorsHandler(c *fiber.Ctx) error {
	err := c.Next()
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, git.ErrInvalidArgument):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, git.ErrProcessFailed), errors.Is(err, actions.ErrEmptyHash):
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	}

	return err //nolint:wrapcheck //already wrapped
}

func (h *Handler) toResponse(result *actions.Result) ActionResponse {
	response := ActionResponse{
		Action:   string(result.Action),
		Message:  result.Message,
		Redirect: result.Redirect,
		Hash:     result.Hash,
		Branch:   result.Branch,
		RecordID: nil,
	}
	if result.Record != nil {
		response.RecordID = &result.Record.ID
	}

	return response
}
