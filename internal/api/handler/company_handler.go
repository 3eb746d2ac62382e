package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bizdata/business-api/internal/core/domain"
	"github.com/bizdata/business-api/internal/core/ports"
)

// CompanyHandler handles HTTP requests for company CRUD.
type CompanyHandler struct {
	service ports.CompanyService
}

func NewCompanyHandler(service ports.CompanyService) *CompanyHandler {
	return &CompanyHandler{service: service}
}

// List handles GET /api/companies.
//
// @Summary      List all companies
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Company
// @Failure      401  {object}  map[string]string
// @Router       /api/companies [get]
func (h *CompanyHandler) List(c echo.Context) error {
	companies, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, companies)
}

// Get handles GET /api/companies/:nit.
//
// @Summary      Get a company by NIT
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Param        nit  path      string  true  "Company NIT"
// @Success      200  {object}  domain.Company
// @Failure      404  {object}  map[string]string
// @Router       /api/companies/{nit} [get]
func (h *CompanyHandler) Get(c echo.Context) error {
	company, err := h.service.Get(c.Request().Context(), c.Param("nit"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, company)
}

// Create handles POST /api/companies.
//
// @Summary      Create company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCompanyRequest  true  "Company details"
// @Success      201   {object}  domain.Company
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/companies [post]
func (h *CompanyHandler) Create(c echo.Context) error {
	var req createCompanyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	company, err := h.service.Create(c.Request().Context(), domain.Company{
		NIT:     req.NIT,
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, company)
}

// Update handles PUT /api/companies/:nit. The NIT cannot change.
//
// @Summary      Update company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        nit   path      string                true  "Company NIT"
// @Param        body  body      updateCompanyRequest  true  "Company details"
// @Success      200   {object}  domain.Company
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/companies/{nit} [put]
func (h *CompanyHandler) Update(c echo.Context) error {
	var req updateCompanyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	company, err := h.service.Update(c.Request().Context(), c.Param("nit"), domain.Company{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, company)
}

// Delete handles DELETE /api/companies/:nit.
//
// @Summary      Delete company
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Param        nit  path      string  true  "Company NIT"
// @Success      204  "No Content"
// @Failure      404  {object}  map[string]string
// @Router       /api/companies/{nit} [delete]
func (h *CompanyHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("nit")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
