package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bettolandro/BettoGames/internal/core/ports"
	"github.com/bettolandro/BettoGames/internal/core/validate"
)

// ProfileHandler covers the profile page: viewing and editing the
// logged-in user's name and password. Email is read-only.
type ProfileHandler struct {
	auth ports.AuthService
}

func NewProfileHandler(auth ports.AuthService) *ProfileHandler {
	return &ProfileHandler{auth: auth}
}

type updateProfileRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Confirm  string `json:"confirm"`
}

// Get returns the profile of the current session.
//
// @Summary      Get profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	session := ctxSession(c)
	return c.JSON(http.StatusOK, sessionResponse{Authenticated: true, Session: session})
}

// Update renames the user and optionally changes the password. Leaving
// both password fields empty keeps the current one.
//
// @Summary      Update profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Profile changes"
// @Success      200   {object}  sessionResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/profile [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	errs := validate.Errors{}
	if len(strings.TrimSpace(req.Name)) < 2 {
		errs["name"] = "name is too short"
	}
	if req.Password != "" || req.Confirm != "" {
		if rules := validate.PasswordStrength(req.Password); !rules.OK() {
			errs["password"] = "password needs " + strings.Join(rules.Missing(), ", ")
		}
		if req.Password != req.Confirm {
			errs["confirm"] = "passwords do not match"
		}
	}
	if len(errs) > 0 {
		return errs
	}

	session, err := h.auth.UpdateProfile(c.Request().Context(), req.Name, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{Authenticated: true, Session: session})
}
