package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/staff-records/internal/domain"
)

func validForm() *domain.StaffForm {
	return &domain.StaffForm{
		StaffID:      "STF001",
		StaffName:    "John Doe",
		Email:        "john.doe@example.com",
		PhoneNumber:  "123-456-7890",
		StartingDate: "2024-01-15",
	}
}

func messageFor(t *testing.T, f *domain.StaffForm, field string) (string, bool) {
	t.Helper()
	for _, v := range ValidateForm(f) {
		if v.Field == field {
			return v.Message, true
		}
	}
	return "", false
}

func TestValidFormHasNoViolations(t *testing.T) {
	assert.Empty(t, ValidateForm(validForm()))
}

func TestEmailGrammar(t *testing.T) {
	cases := []struct {
		email string
		valid bool
	}{
		{"john.doe@example.com", true},
		{"a.b.c@example.co", true},
		{"user_%+-@domain.org", true},
		{"invalid..email@example.com", false},
		{".leading@example.com", false},
		{"trailing.@example.com", false},
		{"no-at-sign.example.com", false},
		{"user@domain", false},
		{"user@domain.c", false},
	}
	for _, tc := range cases {
		t.Run(tc.email, func(t *testing.T) {
			f := validForm()
			f.Email = tc.email
			_, failed := messageFor(t, f, "email")
			assert.Equal(t, !tc.valid, failed)
		})
	}
}

func TestEmailRequiredPrecedesFormat(t *testing.T) {
	f := validForm()
	f.Email = ""
	msg, failed := messageFor(t, f, "email")
	require.True(t, failed)
	assert.Equal(t, "Email is required", msg)
}

func TestEmailLengthCap(t *testing.T) {
	f := validForm()
	f.Email = strings.Repeat("a", 95) + "@example.com"
	_, failed := messageFor(t, f, "email")
	assert.True(t, failed)
}

func TestPhoneGrammar(t *testing.T) {
	cases := []struct {
		phone string
		valid bool
	}{
		{"(123) 456-7890", true},
		{"123-456-7890", true},
		{"1234567890", true},
		{"+1-123-456-7890", true},
		{"123.456.7890", true},
		{"123", false},
		{"abc-def-ghij", false},
		{"12345678901234567890123", false},
	}
	for _, tc := range cases {
		t.Run(tc.phone, func(t *testing.T) {
			f := validForm()
			f.PhoneNumber = tc.phone
			_, failed := messageFor(t, f, "phoneNumber")
			assert.Equal(t, !tc.valid, failed)
		})
	}
}

func TestPhoneRequiredPrecedesFormat(t *testing.T) {
	f := validForm()
	f.PhoneNumber = ""
	msg, failed := messageFor(t, f, "phoneNumber")
	require.True(t, failed)
	assert.Equal(t, "Phone number is required", msg)
}

func TestStaffIDLengthBoundaries(t *testing.T) {
	cases := []struct {
		length int
		valid  bool
	}{
		{2, false},
		{3, true},
		{20, true},
		{21, false},
	}
	for _, tc := range cases {
		f := validForm()
		f.StaffID = strings.Repeat("x", tc.length)
		_, failed := messageFor(t, f, "staffId")
		assert.Equal(t, !tc.valid, failed, "length %d", tc.length)
	}
}

func TestStaffNameLengthBoundaries(t *testing.T) {
	f := validForm()
	f.StaffName = "x"
	_, failed := messageFor(t, f, "staffName")
	assert.True(t, failed)

	f.StaffName = strings.Repeat("x", 100)
	_, failed = messageFor(t, f, "staffName")
	assert.False(t, failed)

	f.StaffName = strings.Repeat("x", 101)
	_, failed = messageFor(t, f, "staffName")
	assert.True(t, failed)
}

func TestStartingDateMustParse(t *testing.T) {
	f := validForm()
	f.StartingDate = "not-a-date"
	_, failed := messageFor(t, f, "startingDate")
	assert.True(t, failed)

	f.StartingDate = ""
	msg, failed := messageFor(t, f, "startingDate")
	require.True(t, failed)
	assert.Equal(t, "Starting date is required", msg)
}

func TestPhotoRules(t *testing.T) {
	f := validForm()
	f.Photo = &domain.PhotoUpload{FileName: "avatar.JPG", Size: 1024}
	assert.Empty(t, ValidateForm(f))

	f.Photo = &domain.PhotoUpload{FileName: "avatar.bmp", Size: 1024}
	_, failed := messageFor(t, f, "photo")
	assert.True(t, failed)

	f.Photo = &domain.PhotoUpload{FileName: "avatar.png", Size: MaxPhotoBytes + 1}
	_, failed = messageFor(t, f, "photo")
	assert.True(t, failed)

	f.Photo = &domain.PhotoUpload{FileName: "avatar.png", Size: MaxPhotoBytes}
	assert.Empty(t, ValidateForm(f))
}

func TestViolationsFollowRuleOrder(t *testing.T) {
	f := &domain.StaffForm{}
	violations := ValidateForm(f)
	require.Len(t, violations, 5)
	fields := make([]string, 0, len(violations))
	for _, v := range violations {
		fields = append(fields, v.Field)
	}
	assert.Equal(t, []string{"staffId", "staffName", "email", "phoneNumber", "startingDate"}, fields)
}
