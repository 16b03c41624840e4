package domain

import "time"

// StartingDateLayout is the wire format for the starting date field.
const StartingDateLayout = "2006-01-02"

// StaffRecord models an employee record. ID is assigned by the repository
// on insert; StaffID is the business key used in URLs.
type StaffRecord struct {
	ID           int64
	StaffID      string
	StaffName    string
	Email        string
	PhoneNumber  string
	StartingDate time.Time
	PhotoPath    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasPhoto reports whether a stored photo is associated with the record.
func (r *StaffRecord) HasPhoto() bool {
	return r.PhotoPath != ""
}

// PhotoUpload carries an uploaded photo through validation and storage.
type PhotoUpload struct {
	FileName string
	Size     int64
	Content  []byte
}

// StaffForm is the typed parse target for create and edit submissions.
// Scalar fields hold the raw submitted strings; StartingDate stays
// unparsed so the validation engine can report a bad date as a field
// violation instead of a bind error. PhotoPath carries the existing
// stored path forward on edit when no new photo is supplied.
type StaffForm struct {
	ID           int64
	StaffID      string
	StaffName    string
	Email        string
	PhoneNumber  string
	StartingDate string
	PhotoPath    string
	Photo        *PhotoUpload
}

// ParseStartingDate parses the submitted date. Callers run the form
// through validation first, which guarantees this succeeds.
func (f *StaffForm) ParseStartingDate() (time.Time, error) {
	return time.Parse(StartingDateLayout, f.StartingDate)
}

// FormFromRecord builds an edit form pre-filled with the record's
// current values.
func FormFromRecord(r *StaffRecord) *StaffForm {
	return &StaffForm{
		ID:           r.ID,
		StaffID:      r.StaffID,
		StaffName:    r.StaffName,
		Email:        r.Email,
		PhoneNumber:  r.PhoneNumber,
		StartingDate: r.StartingDate.Format(StartingDateLayout),
		PhotoPath:    r.PhotoPath,
	}
}
