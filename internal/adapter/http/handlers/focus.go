package handlers

import (
	"context"
	"errors"
	"net/http"

	"zenflow/internal/adapter/http/dto"
	"zenflow/internal/adapter/http/mapper"
	"zenflow/internal/adapter/http/middleware"
	"zenflow/internal/core/domain"
	"zenflow/internal/core/focus"
	"zenflow/internal/core/ports"
	"zenflow/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type FocusHandler struct {
	focusService ports.FocusService
}

func NewFocusHandler(focusService ports.FocusService) *FocusHandler {
	return &FocusHandler{focusService: focusService}
}

// Select runs a focus check-in for the caller and returns the suggested task, if any.
func (h *FocusHandler) Select(c *gin.Context) {
	lang := middleware.GetLang(c)
	user, ok := requireUser(c)
	if !ok {
		return
	}

	var req dto.FocusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidFocusPayload, lang),
		)
		return
	}

	energy, err := domain.ParseMentalEffort(req.Energy)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidFocusPayload, lang),
		)
		return
	}

	budget := focus.AnyTime
	if req.Minutes != nil {
		budget = *req.Minutes
	}
	if !focus.ValidBudget(budget) {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidFocusPayload, lang),
		)
		return
	}

	suggestion, err := h.focusService.Suggest(c.Request.Context(), user.ID, energy, budget)
	if err != nil {
		zap.L().Error("failed to select focus task", zap.String("user_id", user.ID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailFocus, lang),
		)
		return
	}

	middleware.FocusOutcomes.WithLabelValues(string(suggestion.Stage)).Inc()
	c.JSON(http.StatusOK, mapper.ToFocusResponse(suggestion))
}

// Complete marks the focused task done and moves the caller to a break.
func (h *FocusHandler) Complete(c *gin.Context) {
	h.transition(c, "complete", h.focusService.Complete)
}

// TakeBreak moves the caller to a break without completing the focused task.
func (h *FocusHandler) TakeBreak(c *gin.Context) {
	h.transition(c, "break", h.focusService.TakeBreak)
}

func (h *FocusHandler) transition(
	c *gin.Context,
	action string,
	apply func(ctx context.Context, userID, taskID string) (focus.Suggestion, error),
) {
	lang := middleware.GetLang(c)
	user, ok := requireUser(c)
	if !ok {
		return
	}
	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	suggestion, err := apply(c.Request.Context(), user.ID, taskID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTaskNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
		case errors.Is(err, focus.ErrInvalidTransition):
			c.JSON(
				http.StatusConflict,
				apierrors.CreateError(http.StatusConflict, apierrors.MsgFocusTaskDone, lang),
			)
		default:
			zap.L().Error("failed to update focus session",
				zap.String("action", action),
				zap.String("user_id", user.ID),
				zap.String("task_id", taskID),
				zap.Error(err),
			)
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailFocusComplete, lang),
			)
		}
		return
	}

	middleware.FocusOutcomes.WithLabelValues(string(suggestion.Stage)).Inc()
	c.JSON(http.StatusOK, mapper.ToFocusResponse(suggestion))
}
