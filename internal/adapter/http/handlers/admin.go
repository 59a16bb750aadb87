package handlers

import (
	"errors"
	"net/http"

	"zenflow/internal/adapter/http/mapper"
	"zenflow/internal/adapter/http/middleware"
	"zenflow/internal/core/domain"
	"zenflow/internal/core/ports"
	"zenflow/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AdminHandler struct {
	adminService ports.AdminService
}

func NewAdminHandler(adminService ports.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	lang := middleware.GetLang(c)
	user, ok := requireUser(c)
	if !ok {
		return
	}

	users, err := h.adminService.ListUsers(c.Request.Context(), user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			c.JSON(http.StatusForbidden, apierrors.CreateError(http.StatusForbidden, apierrors.MsgForbidden, lang))
			return
		}

		zap.L().Error("failed to list users", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListUsers, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItems(users))
}

func (h *AdminHandler) GlobalStats(c *gin.Context) {
	stats, err := h.adminService.GlobalStats(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to compute stats", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailStats, middleware.GetLang(c)),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToStatsResponse(stats))
}
