package handler

import (
	"log/slog"
	"net/http"

	"linkup/internal/delivery/api/response"
	deliverycontext "linkup/internal/delivery/context"
	"linkup/internal/domain/entity"
	domainerrors "linkup/internal/domain/errors"
	"linkup/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const reminderSentMessage = "Reminder notifications sent"

// ReminderHandler handles the manual port-in reminder trigger
type ReminderHandler struct {
	reminderUC usecase.ReminderUsecase
	logger     *slog.Logger
}

// ReminderHandlerParams holds dependencies for ReminderHandler, injected by Fx.
type ReminderHandlerParams struct {
	fx.In

	ReminderUC usecase.ReminderUsecase
	Logger     *slog.Logger
}

// NewReminderHandler creates a new reminder handler
func NewReminderHandler(params ReminderHandlerParams) *ReminderHandler {
	return &ReminderHandler{
		reminderUC: params.ReminderUC,
		logger:     params.Logger,
	}
}

// ManualPortInReminder runs the reminder job immediately with the cooldown bypassed.
// Only POST is accepted.
func (h *ReminderHandler) ManualPortInReminder(c echo.Context) error {
	if c.Request().Method != http.MethodPost {
		c.Response().Header().Set(echo.HeaderAllow, http.MethodPost)

		return response.MethodNotAllowed(c)
	}

	ctx := deliverycontext.Detach(c.Request().Context())
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	summary, err := h.reminderUC.RunPortInReminders(ctx, usecase.RunOptions{
		Trigger:        entity.TriggerManual,
		BypassCooldown: true,
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
	})
	if err != nil {
		logger.Error("Manual port-in reminder run failed", slog.Any("error", err))

		return response.InternalServerError(c, domainerrors.ErrReminderRunFailed.ErrorCode(), err.Error())
	}

	return response.Success(c, http.StatusOK, reminderSentMessage, summary)
}
