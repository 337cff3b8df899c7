// Package auth contiene los controllers de registro, login y cuenta.
package auth

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	dto "github.com/dropDatabas3/webshop/internal/http/dto/auth"
	httperrors "github.com/dropDatabas3/webshop/internal/http/errors"
	"github.com/dropDatabas3/webshop/internal/http/helpers"
	"github.com/dropDatabas3/webshop/internal/http/middlewares"
	"github.com/dropDatabas3/webshop/internal/observability/logger"
	"github.com/dropDatabas3/webshop/internal/service"
)

const maxAuthBodySize = 64 * 1024 // 64KB

// Controller maneja las rutas de autenticación y cuenta.
type Controller struct {
	auth *service.AuthService
}

// NewController crea un controller de auth.
func NewController(auth *service.AuthService) *Controller {
	return &Controller{auth: auth}
}

// Register maneja POST /api/auth/register.
func (c *Controller) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("AuthController.Register"))

	var req dto.RegisterRequest
	if !helpers.ReadJSON(w, r, maxAuthBodySize, &req) {
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		httperrors.WriteError(w, httperrors.ErrBadRequest.WithDetail("email and password are required"))
		return
	}

	result, err := c.auth.Register(ctx, service.RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		c.handleError(w, err, log)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	helpers.WriteJSON(w, http.StatusCreated, dto.AuthResponse{
		TokenType: "Bearer",
		Token:     result.Token,
		User:      dto.FromUser(result.User),
	})
	log.Info("user registered", logger.UserID(result.User.ID))
}

// Login maneja POST /api/auth/login.
func (c *Controller) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("AuthController.Login"))

	var req dto.LoginRequest
	if !helpers.ReadJSON(w, r, maxAuthBodySize, &req) {
		return
	}

	result, err := c.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		c.handleError(w, err, log)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	helpers.WriteJSON(w, http.StatusOK, dto.AuthResponse{
		TokenType: "Bearer",
		Token:     result.Token,
		User:      dto.FromUser(result.User),
	})
}

// Me maneja GET /api/me. Requiere auth.
func (c *Controller) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("AuthController.Me"))

	user, err := c.auth.FindUserByID(ctx, middlewares.GetUserID(ctx))
	if err != nil {
		c.handleError(w, err, log)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, dto.FromUser(user))
}

// DeleteMe maneja DELETE /api/me. Borra la cuenta con su cascade de
// productos y favoritos asociados. Requiere auth.
func (c *Controller) DeleteMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("AuthController.DeleteMe"))

	if err := c.auth.DeleteUser(ctx, middlewares.GetUserID(ctx)); err != nil {
		c.handleError(w, err, log)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleError mapea errores del service a respuestas HTTP.
func (c *Controller) handleError(w http.ResponseWriter, err error, log *zap.Logger) {
	switch {
	case errors.Is(err, service.ErrEmailAlreadyExists):
		httperrors.WriteError(w, httperrors.ErrEmailAlreadyInUse)
	case errors.Is(err, service.ErrInvalidCredentials):
		httperrors.WriteError(w, httperrors.ErrInvalidCredentials)
	case errors.Is(err, service.ErrUserNotFound):
		httperrors.WriteError(w, httperrors.ErrUserNotFound)
	default:
		log.Error("unhandled auth error", logger.Err(err))
		httperrors.WriteError(w, err)
	}
}
