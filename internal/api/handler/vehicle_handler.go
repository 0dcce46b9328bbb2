package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/vehicles-api/internal/api/metrics"
	"github.com/99minutos/vehicles-api/internal/core/ports"
)

// VehicleHandler handles HTTP requests for vehicle operations.
type VehicleHandler struct {
	service ports.VehicleService
}

func NewVehicleHandler(service ports.VehicleService) *VehicleHandler {
	return &VehicleHandler{service: service}
}

// Create handles POST /vehicles.
//
// @Summary      Create a vehicle
// @Tags         vehicles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      vehicleRequest  true  "Vehicle"
// @Success      201   {object}  vehicleResponse
// @Failure      400   {object}  validationResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /vehicles [post]
func (h *VehicleHandler) Create(c echo.Context) error {
	var req vehicleRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}

	v, err := h.service.Create(c.Request().Context(), toVehicleInput(req))
	if err != nil {
		return writeError(c, err)
	}

	metrics.VehicleMutationsTotal.WithLabelValues("create").Inc()
	c.Response().Header().Set(echo.HeaderLocation, "/vehicles/"+strconv.FormatInt(v.ID, 10))
	return c.JSON(http.StatusCreated, toVehicleResponse(*v))
}

// List handles GET /vehicles.
//
// @Summary      List vehicles
// @Tags         vehicles
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int     false  "1-based page number; omit for all"
// @Param        name   query     string  false  "Case-insensitive name substring"
// @Param        brand  query     string  false  "Accepted but not applied"
// @Success      200    {array}   vehicleResponse
// @Failure      400    {object}  validationResponse
// @Failure      401    {object}  map[string]string
// @Router       /vehicles [get]
func (h *VehicleHandler) List(c echo.Context) error {
	page, ok := queryPage(c)
	if !ok {
		return badRequest(c, "page must be a positive integer")
	}

	vehicles, err := h.service.List(c.Request().Context(), ports.VehicleFilter{
		Page:  page,
		Name:  c.QueryParam("name"),
		Brand: c.QueryParam("brand"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toVehicleResponses(vehicles))
}

// Get handles GET /vehicles/:id.
//
// @Summary      Get a vehicle by id
// @Tags         vehicles
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Vehicle id"
// @Success      200  {object}  vehicleResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404
// @Router       /vehicles/{id} [get]
func (h *VehicleHandler) Get(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "id must be a positive integer")
	}

	v, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toVehicleResponse(*v))
}

// Update handles PUT /vehicles/:id. Name, brand and year are all replaced.
//
// @Summary      Update a vehicle
// @Tags         vehicles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int             true  "Vehicle id"
// @Param        body  body      vehicleRequest  true  "Vehicle"
// @Success      200   {object}  vehicleResponse
// @Failure      400   {object}  validationResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404
// @Router       /vehicles/{id} [put]
func (h *VehicleHandler) Update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "id must be a positive integer")
	}
	var req vehicleRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}

	v, err := h.service.Update(c.Request().Context(), id, toVehicleInput(req))
	if err != nil {
		return writeError(c, err)
	}

	metrics.VehicleMutationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, toVehicleResponse(*v))
}

// Delete handles DELETE /vehicles/:id.
//
// @Summary      Delete a vehicle
// @Tags         vehicles
// @Security     BearerAuth
// @Param        id   path  int  true  "Vehicle id"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404
// @Router       /vehicles/{id} [delete]
func (h *VehicleHandler) Delete(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "id must be a positive integer")
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}

	metrics.VehicleMutationsTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
