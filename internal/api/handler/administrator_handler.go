package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/vehicles-api/internal/api/metrics"
	"github.com/99minutos/vehicles-api/internal/core/ports"
)

// AdministratorHandler handles login and administrator management.
type AdministratorHandler struct {
	service ports.AdministratorService
	tokens  ports.TokenIssuer
}

func NewAdministratorHandler(service ports.AdministratorService, tokens ports.TokenIssuer) *AdministratorHandler {
	return &AdministratorHandler{service: service, tokens: tokens}
}

// Login authenticates an administrator and returns a bearer token.
//
// @Summary      Login
// @Tags         administrators
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  validationResponse
// @Failure      401
// @Router       /administrators/login [post]
func (h *AdministratorHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}

	admin, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return writeError(c, err)
	}

	token, err := h.tokens.Issue(admin)
	if err != nil {
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{Email: admin.Email, Role: admin.Role, Token: token})
}

// List returns administrators, ten per page when ?page is given.
//
// @Summary      List administrators
// @Tags         administrators
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int  false  "1-based page number; omit for all"
// @Success      200   {array}   administratorResponse
// @Failure      400   {object}  validationResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /administrators [get]
func (h *AdministratorHandler) List(c echo.Context) error {
	page, ok := queryPage(c)
	if !ok {
		return badRequest(c, "page must be a positive integer")
	}

	admins, err := h.service.List(c.Request().Context(), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toAdministratorResponses(admins))
}

// Get returns a single administrator.
//
// @Summary      Get an administrator by id
// @Tags         administrators
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Administrator id"
// @Success      200  {object}  administratorResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404
// @Router       /administrators/{id} [get]
func (h *AdministratorHandler) Get(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "id must be a positive integer")
	}

	admin, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toAdministratorResponse(*admin))
}

// Create registers a new administrator. Role defaults to Editor.
//
// @Summary      Create an administrator
// @Tags         administrators
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAdministratorRequest  true  "Administrator details"
// @Success      201   {object}  administratorResponse
// @Failure      400   {object}  validationResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /administrators [post]
func (h *AdministratorHandler) Create(c echo.Context) error {
	var req createAdministratorRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return writeError(c, err)
	}

	admin, err := h.service.Create(c.Request().Context(), req.Email, req.Password, req.Role)
	if err != nil {
		return writeError(c, err)
	}

	metrics.AdministratorsCreatedTotal.WithLabelValues(admin.Role).Inc()
	c.Response().Header().Set(echo.HeaderLocation, "/administrators/"+strconv.FormatInt(admin.ID, 10))
	return c.JSON(http.StatusCreated, toAdministratorResponse(*admin))
}
