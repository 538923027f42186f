package model

import "time"

// Encounter is a clinical visit record. This service only ever reads
// encounters; they are created elsewhere in the host EMR.
type Encounter struct {
	ID        int64     `db:"encounter" json:"encounter"`
	PatientID int64     `db:"pid" json:"pid"`
	Date      time.Time `db:"date" json:"date"`
}
