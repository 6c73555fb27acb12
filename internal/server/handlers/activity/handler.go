package activity

import (
	"fmt"

	"github.com/apiarycd/revisr/internal/activity"
	"github.com/apiarycd/revisr/internal/server/validation"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type Handler struct {
	activitySvc *activity.Service

	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(activitySvc *activity.Service, validator *validator.Validate, logger *zap.Logger) handler.Handler {
	return &Handler{
		activitySvc: activitySvc,

		validator: validator,
		logger:    logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r.Get("/activity", validation.DecorateWithQueryEx(h.validator, h.recent))
}

//	@Summary		Recent activity
//	@Description	Journaled actions, newest first
//	@Tags			activity
//	@Produce		json
//	@Param			limit	query		int	false	"Maximum number of events"
//	@Success		200		{array}		EventResponse
//	@Failure		400		{object}	fiberfx.ErrorResponse
//	@Router			/activity [get]
//
// Recent activity.
func (h *Handler) recent(c *fiber.Ctx, req *RecentQuery) error {
	events, err := h.activitySvc.Recent(c.Context(), req.Limit)
	if err != nil {
		return fmt.Errorf("failed to list activity: %w", err)
	}

	return c.JSON(lo.Map(events, func(event activity.Event, _ int) EventResponse {
		return EventResponse{
			ID:      event.ID,
			Time:    event.Time,
			Message: event.Message,
			Event:   string(event.Kind),
			Link:    event.Link,
		}
	}))
}
