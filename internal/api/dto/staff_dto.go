package dto

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staff-records/internal/domain"
)

// StaffResponse is the JSON shape for a staff record.
type StaffResponse struct {
	ID           int64     `json:"id"`
	StaffID      string    `json:"staffId"`
	StaffName    string    `json:"staffName"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phoneNumber"`
	StartingDate string    `json:"startingDate"`
	PhotoPath    string    `json:"photoPath,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NewStaffResponse maps a domain record to its response shape.
func NewStaffResponse(r *domain.StaffRecord) StaffResponse {
	return StaffResponse{
		ID:           r.ID,
		StaffID:      r.StaffID,
		StaffName:    r.StaffName,
		Email:        r.Email,
		PhoneNumber:  r.PhoneNumber,
		StartingDate: r.StartingDate.Format(domain.StartingDateLayout),
		PhotoPath:    r.PhotoPath,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// NewStaffListResponse maps a record slice, keeping repository order.
func NewStaffListResponse(records []domain.StaffRecord) []StaffResponse {
	result := make([]StaffResponse, 0, len(records))
	for i := range records {
		result = append(result, NewStaffResponse(&records[i]))
	}
	return result
}

// StaffFormResponse describes the editable form fields, used for the
// blank create scaffold and the pre-filled edit form.
type StaffFormResponse struct {
	ID           int64  `json:"id,omitempty"`
	StaffID      string `json:"staffId"`
	StaffName    string `json:"staffName"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phoneNumber"`
	StartingDate string `json:"startingDate"`
	PhotoPath    string `json:"photoPath,omitempty"`
}

// EmptyStaffForm returns the blank create scaffold.
func EmptyStaffForm() StaffFormResponse {
	return StaffFormResponse{}
}

// NewStaffFormResponse maps an edit form for redisplay.
func NewStaffFormResponse(f *domain.StaffForm) StaffFormResponse {
	return StaffFormResponse{
		ID:           f.ID,
		StaffID:      f.StaffID,
		StaffName:    f.StaffName,
		Email:        f.Email,
		PhoneNumber:  f.PhoneNumber,
		StartingDate: f.StartingDate,
		PhotoPath:    f.PhotoPath,
	}
}

// ParseStaffForm reads a multipart submission into a typed form. Field
// presence and format problems are left for the validation engine; only
// an unreadable upload is an error here.
func ParseStaffForm(c *fiber.Ctx) (*domain.StaffForm, error) {
	form := &domain.StaffForm{
		StaffID:      strings.TrimSpace(c.FormValue("staffId")),
		StaffName:    strings.TrimSpace(c.FormValue("staffName")),
		Email:        strings.TrimSpace(c.FormValue("email")),
		PhoneNumber:  strings.TrimSpace(c.FormValue("phoneNumber")),
		StartingDate: strings.TrimSpace(c.FormValue("startingDate")),
		PhotoPath:    strings.TrimSpace(c.FormValue("photoPath")),
	}

	if raw := strings.TrimSpace(c.FormValue("id")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err == nil {
			form.ID = id
		}
	}

	header, err := c.FormFile("photo")
	if err != nil || header == nil {
		// No photo attached.
		return form, nil
	}

	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	form.Photo = &domain.PhotoUpload{
		FileName: header.Filename,
		Size:     header.Size,
		Content:  content,
	}
	return form, nil
}
