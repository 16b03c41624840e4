package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staff-records/internal/api/dto"
	"github.com/spec-kit/staff-records/internal/domain"
	"github.com/spec-kit/staff-records/internal/service"
	apperrors "github.com/spec-kit/staff-records/pkg/util"
)

const listPath = "/staff"

// StaffHandler exposes the staff record CRUD endpoints.
type StaffHandler struct {
	service *service.StaffService
}

// NewStaffHandler constructs the handler.
func NewStaffHandler(service *service.StaffService) *StaffHandler {
	return &StaffHandler{service: service}
}

// List handles GET /staff.
func (h *StaffHandler) List(c *fiber.Ctx) error {
	records, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewStaffListResponse(records)})
}

// New handles GET /staff/new with the blank form scaffold.
func (h *StaffHandler) New(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": dto.EmptyStaffForm()})
}

// Create handles POST /staff.
func (h *StaffHandler) Create(c *fiber.Ctx) error {
	form, err := dto.ParseStaffForm(c)
	if err != nil {
		return apperrors.NewDomainError("BAD_REQUEST", "invalid multipart payload", http.StatusBadRequest, nil)
	}

	record, err := h.service.Create(c.UserContext(), form)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data":     dto.NewStaffResponse(record),
		"redirect": listPath,
	})
}

// Detail handles GET /staff/:staffId.
func (h *StaffHandler) Detail(c *fiber.Ctx) error {
	record, err := h.service.GetByStaffID(c.UserContext(), c.Params("staffId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewStaffResponse(record)})
}

// EditForm handles GET /staff/:staffId/edit with the pre-filled form.
func (h *StaffHandler) EditForm(c *fiber.Ctx) error {
	record, err := h.service.GetByStaffID(c.UserContext(), c.Params("staffId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewStaffFormResponse(domain.FormFromRecord(record))})
}

// Edit handles POST /staff/:staffId/edit.
func (h *StaffHandler) Edit(c *fiber.Ctx) error {
	form, err := dto.ParseStaffForm(c)
	if err != nil {
		return apperrors.NewDomainError("BAD_REQUEST", "invalid multipart payload", http.StatusBadRequest, nil)
	}

	record, err := h.service.Update(c.UserContext(), c.Params("staffId"), form)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data":     dto.NewStaffResponse(record),
		"redirect": listPath,
	})
}

// DeleteConfirm handles GET /staff/:staffId/delete with the record to
// confirm, a 404 when it is already gone.
func (h *StaffHandler) DeleteConfirm(c *fiber.Ctx) error {
	record, err := h.service.GetByStaffID(c.UserContext(), c.Params("staffId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewStaffResponse(record)})
}

// Delete handles POST /staff/:staffId/delete. Deleting an absent key is
// a no-op so the redirect outcome is the same either way.
func (h *StaffHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("staffId")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"redirect": listPath})
}
