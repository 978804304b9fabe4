package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bettolandro/BettoGames/internal/api/metrics"
	"github.com/bettolandro/BettoGames/internal/core/domain"
	"github.com/bettolandro/BettoGames/internal/core/ports"
	"github.com/bettolandro/BettoGames/internal/core/validate"
)

// AuthHandler covers the login, registration and password-reset pages,
// plus the navbar session slot.
type AuthHandler struct {
	auth ports.AuthService
}

func NewAuthHandler(auth ports.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Confirm  string `json:"confirm"`
}

type forgotRequest struct {
	Email string `json:"email"`
}

type sessionResponse struct {
	Authenticated bool            `json:"authenticated"`
	Session       *domain.Session `json:"session"`
}

type loginResponse struct {
	Token   string          `json:"token"`
	Session *domain.Session `json:"session"`
	// Landing tells the client which page to go to next: "admin" for
	// admin accounts, "home" otherwise.
	Landing string `json:"landing"`
}

// Current reports who is logged in; the navbar renders from this.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /v1/session [get]
func (h *AuthHandler) Current(c echo.Context) error {
	session, err := h.auth.Current(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{Authenticated: session != nil, Session: session})
}

// Login authenticates a user and returns a bearer token for the session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if !validate.ValidEmail(strings.TrimSpace(req.Email)) {
		return validate.Errors{"email": "must be a valid email"}
	}

	token, session, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	landing := "home"
	if session.IsAdmin() {
		landing = "admin"
	}
	return c.JSON(http.StatusOK, loginResponse{Token: token, Session: session, Landing: landing})
}

// Logout clears the session record.
//
// @Summary      Logout
// @Tags         auth
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.auth.Logout(c.Request().Context()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Register creates a client account. The new user must log in afterwards.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  map[string]any
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	errs := validate.Errors{}
	if len(strings.TrimSpace(req.Name)) < 2 {
		errs["name"] = "name is too short"
	}
	if !validate.ValidEmail(strings.TrimSpace(req.Email)) {
		errs["email"] = "must be a valid email"
	}
	if rules := validate.PasswordStrength(req.Password); !rules.OK() {
		errs["password"] = "password needs " + strings.Join(rules.Missing(), ", ")
	}
	if req.Password != req.Confirm {
		errs["confirm"] = "passwords do not match"
	}
	if len(errs) > 0 {
		metrics.RegistrationsTotal.WithLabelValues("failure").Inc()
		return errs
	}

	user, err := h.auth.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusCreated, map[string]any{"user": user})
}

// Forgot resets the account password to the documented demo temporary
// value and echoes it back.
//
// @Summary      Reset password (demo)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      forgotRequest  true  "Account email"
// @Success      200   {object}  map[string]string
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /auth/forgot [post]
func (h *AuthHandler) Forgot(c echo.Context) error {
	var req forgotRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if !validate.ValidEmail(strings.TrimSpace(req.Email)) {
		return validate.Errors{"email": "must be a valid email"}
	}

	temp, err := h.auth.ResetPassword(c.Request().Context(), req.Email)
	if err != nil {
		return err
	}

	metrics.PasswordResetsTotal.Inc()
	return c.JSON(http.StatusOK, map[string]string{
		"message":       "a temporary password has been set",
		"temp_password": temp,
	})
}
