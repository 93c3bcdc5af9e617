package handlers

import (
	"errors"
	"net/http"

	"rocket_help/internal/adapter/http/dto/request"
	"rocket_help/internal/adapter/http/dto/response"
	"rocket_help/internal/adapter/http/middleware"
	"rocket_help/internal/usecase"
	"rocket_help/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidSignInPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errUnauthenticated      = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authentication required", http.StatusUnauthorized)
)

type SessionHandler struct {
	usecase usecase.ISessionUseCase
	logger  *zap.Logger
}

func NewSessionHandler(uc usecase.ISessionUseCase, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{usecase: uc, logger: logger}
}

// SignIn godoc
// @Summary      Sign in with email and password
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      request.SignInRequest  true  "Credentials"
// @Success      201   {object}  response.SessionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      401   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /session [post]
func (h *SessionHandler) SignIn(c *gin.Context) {
	var payload request.SignInRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSignInPayload.HTTPStatus, errInvalidSignInPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.SignIn(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromSession(session))
}

// CurrentSession godoc
// @Summary      Signed-in user
// @Tags         session
// @Produce      json
// @Success      200  {object}  response.CurrentSessionResponse
// @Failure      401  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /session [get]
func (h *SessionHandler) CurrentSession(c *gin.Context) {
	claims, ok := middleware.Claims(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	user, err := h.usecase.CurrentUser(c.Request.Context(), claims.UserID)
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCurrentSession(user, claims.ExpiresAt))
}

// SignOut godoc
// @Summary      Sign out
// @Tags         session
// @Success      204
// @Failure      401  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /session [delete]
func (h *SessionHandler) SignOut(c *gin.Context) {
	claims, ok := middleware.Claims(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	if err := h.usecase.SignOut(c.Request.Context(), claims); err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
}

func mapSessionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingCredentials):
		return pkg.NewDomainErrorSimple("MISSING_CREDENTIALS", "Email and password are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidEmail):
		return pkg.NewDomainErrorSimple("INVALID_EMAIL", "Invalid email", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrSignInFailed):
		return pkg.NewDomainError("SIGN_IN_FAILED", "Could not sign in", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrUnauthenticated), errors.Is(err, usecase.ErrUserNotFound):
		return errUnauthenticated
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
