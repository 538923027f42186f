package model

// TrackerEntry links a checked-in appointment to the day's encounter for
// patient-flow tracking. Written at most once per qualifying update, best
// effort.
type TrackerEntry struct {
	ApptDate    string `db:"apptdate"`
	ApptTime    string `db:"appttime"`
	EventID     int64  `db:"eid"`
	PatientID   int64  `db:"pid"`
	User        string `db:"original_user"`
	Status      string `db:"status"`
	Room        string `db:"room"`
	EncounterID int64  `db:"encounter"`
}
