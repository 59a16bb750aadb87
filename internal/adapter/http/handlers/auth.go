package handlers

import (
	"errors"
	"net/http"

	"zenflow/internal/adapter/http/dto"
	"zenflow/internal/adapter/http/mapper"
	"zenflow/internal/adapter/http/middleware"
	"zenflow/internal/core/domain"
	"zenflow/internal/core/ports"
	"zenflow/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	identityService ports.IdentityService
}

func NewAuthHandler(identityService ports.IdentityService) *AuthHandler {
	return &AuthHandler{identityService: identityService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidRegistration, lang),
		)
		return
	}

	_, err := h.identityService.Register(c.Request.Context(), domain.RegisterInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateEmail):
			c.JSON(http.StatusConflict, apierrors.CreateError(http.StatusConflict, apierrors.MsgDuplicateEmail, lang))
		case errors.Is(err, domain.ErrDuplicateUsername):
			c.JSON(http.StatusConflict, apierrors.CreateError(http.StatusConflict, apierrors.MsgDuplicateUsername, lang))
		case errors.Is(err, domain.ErrInvalidRegistration):
			c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidRegistration, lang))
		default:
			zap.L().Error("failed to register user", zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailRegister, lang),
			)
		}
		return
	}

	c.JSON(http.StatusCreated, dto.MessageResponse{
		Message: apierrors.GetTransErrorMsg(apierrors.MsgUserRegistered, lang),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang),
		)
		return
	}

	session, err := h.identityService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidCredentials, lang),
			)
			return
		}

		zap.L().Error("failed to log in", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailLogin, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToSessionResponse(session))
}

// Logout drops the caller's cached session. It answers 204 even when none was cached.
func (h *AuthHandler) Logout(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	if err := h.identityService.Logout(c.Request.Context(), user.ID); err != nil {
		zap.L().Error("failed to log out", zap.String("user_id", user.ID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailLogout, middleware.GetLang(c)),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

// CurrentSession returns the caller's cached session.
func (h *AuthHandler) CurrentSession(c *gin.Context) {
	lang := middleware.GetLang(c)
	user, ok := requireUser(c)
	if !ok {
		return
	}

	session, err := h.identityService.CurrentSession(c.Request.Context(), user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNoSession) {
			c.JSON(http.StatusNotFound, apierrors.CreateError(http.StatusNotFound, apierrors.MsgNoSession, lang))
			return
		}

		zap.L().Error("failed to load session", zap.String("user_id", user.ID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgNoSession, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToSessionResponse(session))
}
