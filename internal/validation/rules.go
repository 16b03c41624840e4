package validation

import (
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/spec-kit/staff-records/internal/domain"
	apperrors "github.com/spec-kit/staff-records/pkg/util"
)

// MaxPhotoBytes caps uploaded photo size at 2 MiB.
const MaxPhotoBytes = 2 * 1024 * 1024

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_%+-]+(\.[a-zA-Z0-9_%+-]+)*@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^(\+?[0-9]{1,3}[-.\s]?)?\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}$`)
)

var allowedPhotoExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

type check struct {
	ok      func(f *domain.StaffForm) bool
	message string
}

type rule struct {
	field  string
	checks []check
}

// formRules is the full rule set, evaluated in declaration order. Each
// field reports at most one violation: the first failing check. Format
// checks skip empty values so "required" wins for blank fields.
var formRules = []rule{
	{
		field: "staffId",
		checks: []check{
			{required(func(f *domain.StaffForm) string { return f.StaffID }), "Staff ID is required"},
			{lengthBetween(func(f *domain.StaffForm) string { return f.StaffID }, 3, 20), "Staff ID must be between 3 and 20 characters"},
		},
	},
	{
		field: "staffName",
		checks: []check{
			{required(func(f *domain.StaffForm) string { return f.StaffName }), "Staff name is required"},
			{lengthBetween(func(f *domain.StaffForm) string { return f.StaffName }, 2, 100), "Staff name must be between 2 and 100 characters"},
		},
	},
	{
		field: "email",
		checks: []check{
			{required(func(f *domain.StaffForm) string { return f.Email }), "Email is required"},
			{maxLength(func(f *domain.StaffForm) string { return f.Email }, 100), "Email cannot exceed 100 characters"},
			{matches(func(f *domain.StaffForm) string { return f.Email }, emailPattern), "Please enter a valid email address"},
		},
	},
	{
		field: "phoneNumber",
		checks: []check{
			{required(func(f *domain.StaffForm) string { return f.PhoneNumber }), "Phone number is required"},
			{maxLength(func(f *domain.StaffForm) string { return f.PhoneNumber }, 20), "Phone number cannot exceed 20 characters"},
			{matches(func(f *domain.StaffForm) string { return f.PhoneNumber }, phonePattern), "Please enter a valid phone number"},
		},
	},
	{
		field: "startingDate",
		checks: []check{
			{required(func(f *domain.StaffForm) string { return f.StartingDate }), "Starting date is required"},
			{validDate, "Starting date must be a valid date"},
		},
	},
	{
		field: "photo",
		checks: []check{
			{photoExtensionAllowed, "Only image files (.jpg, .jpeg, .png, .gif) are allowed"},
			{photoWithinSizeLimit, "File size cannot exceed 2MB"},
		},
	},
}

// ValidateForm evaluates the rule set against a submission and returns
// the violations in rule order. An empty slice means the form is valid.
func ValidateForm(f *domain.StaffForm) []apperrors.FieldViolation {
	var violations []apperrors.FieldViolation
	for _, r := range formRules {
		for _, c := range r.checks {
			if !c.ok(f) {
				violations = append(violations, apperrors.FieldViolation{Field: r.field, Message: c.message})
				break
			}
		}
	}
	return violations
}

func required(get func(*domain.StaffForm) string) func(*domain.StaffForm) bool {
	return func(f *domain.StaffForm) bool {
		return strings.TrimSpace(get(f)) != ""
	}
}

func lengthBetween(get func(*domain.StaffForm) string, min, max int) func(*domain.StaffForm) bool {
	return func(f *domain.StaffForm) bool {
		n := utf8.RuneCountInString(get(f))
		return n >= min && n <= max
	}
}

func maxLength(get func(*domain.StaffForm) string, max int) func(*domain.StaffForm) bool {
	return func(f *domain.StaffForm) bool {
		return utf8.RuneCountInString(get(f)) <= max
	}
}

func matches(get func(*domain.StaffForm) string, pattern *regexp.Regexp) func(*domain.StaffForm) bool {
	return func(f *domain.StaffForm) bool {
		v := get(f)
		if v == "" {
			return true
		}
		return pattern.MatchString(v)
	}
}

func validDate(f *domain.StaffForm) bool {
	if f.StartingDate == "" {
		return true
	}
	_, err := time.Parse(domain.StartingDateLayout, f.StartingDate)
	return err == nil
}

func photoExtensionAllowed(f *domain.StaffForm) bool {
	if f.Photo == nil {
		return true
	}
	ext := strings.ToLower(filepath.Ext(f.Photo.FileName))
	return allowedPhotoExtensions[ext]
}

func photoWithinSizeLimit(f *domain.StaffForm) bool {
	if f.Photo == nil {
		return true
	}
	return f.Photo.Size <= MaxPhotoBytes
}
