package model

import "github.com/google/uuid"

// Patient is the demographic record kept in patient_data.
type Patient struct {
	ID         int64     `db:"pid" json:"pid"`
	UUID       uuid.UUID `db:"uuid" json:"uuid"`
	FirstName  string    `db:"fname" json:"fname"`
	LastName   string    `db:"lname" json:"lname"`
	DOB        string    `db:"dob" json:"DOB"`
	Sex        string    `db:"sex" json:"sex"`
	Email      string    `db:"email" json:"email"`
	Phone      string    `db:"phone_cell" json:"phone_cell"`
	HomePhone  string    `db:"phone_home" json:"phone_home"`
	Street     string    `db:"street" json:"street"`
	City       string    `db:"city" json:"city"`
	State      string    `db:"state" json:"state"`
	PostalCode string    `db:"postal_code" json:"postal_code"`
}

// SyncPatientPayload is the shape pushed to the Residen API on patient
// create/update. The Residen side speaks snake_case names and only wants
// this subset; the uuid is the cross-system patient key.
type SyncPatientPayload struct {
	UUID      string `json:"uuid"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	HomePhone string `json:"phone_home"`
}

// SyncPayload formats a patient for the outbound push.
func (p *Patient) SyncPayload() *SyncPatientPayload {
	return &SyncPatientPayload{
		UUID:      p.UUID.String(),
		FirstName: p.FirstName,
		LastName:  p.LastName,
		HomePhone: p.HomePhone,
	}
}
