package model

// Appointment mirrors a calendar event row. Column names follow the EMR
// schema (openemr_postcalendar_events), which is also the wire format the
// Residen app already speaks.
type Appointment struct {
	EventID         int64  `db:"pc_eid" json:"pc_eid"`
	PatientID       int64  `db:"pc_pid" json:"pc_pid"`
	CategoryID      string `db:"pc_catid" json:"pc_catid"`
	Title           string `db:"pc_title" json:"pc_title"`
	Duration        string `db:"pc_duration" json:"pc_duration"`
	Comments        string `db:"pc_hometext" json:"pc_hometext"`
	Status          string `db:"pc_apptstatus" json:"pc_apptstatus"`
	EventDate       string `db:"pc_eventDate" json:"pc_eventDate"`
	StartTime       string `db:"pc_startTime" json:"pc_startTime"`
	FacilityID      string `db:"pc_facility" json:"pc_facility"`
	BillingLocation string `db:"pc_billing_location" json:"pc_billing_location"`
	ProviderID      string `db:"pc_aid" json:"pc_aid"`
	Room            string `db:"pc_room" json:"pc_room"`
}

// UpdateAppointmentRequest is the PUT body for an appointment update. All
// mutable columns are replaced in one statement; optional fields default to
// the empty string.
type UpdateAppointmentRequest struct {
	CategoryID      string `json:"pc_catid"`
	Title           string `json:"pc_title"`
	Duration        string `json:"pc_duration"`
	Comments        string `json:"pc_hometext"`
	Status          string `json:"pc_apptstatus"`
	EventDate       string `json:"pc_eventDate"`
	StartTime       string `json:"pc_startTime"`
	FacilityID      string `json:"pc_facility"`
	BillingLocation string `json:"pc_billing_location"`
	ProviderID      string `json:"pc_aid"`
	Room            string `json:"pc_room"`
}

// requiredAppointmentFields lists the fields a caller must supply, in the
// order they are reported when missing.
var requiredAppointmentFields = []struct {
	name  string
	value func(*UpdateAppointmentRequest) string
}{
	{"pc_catid", func(r *UpdateAppointmentRequest) string { return r.CategoryID }},
	{"pc_title", func(r *UpdateAppointmentRequest) string { return r.Title }},
	{"pc_duration", func(r *UpdateAppointmentRequest) string { return r.Duration }},
	{"pc_eventDate", func(r *UpdateAppointmentRequest) string { return r.EventDate }},
	{"pc_startTime", func(r *UpdateAppointmentRequest) string { return r.StartTime }},
	{"pc_aid", func(r *UpdateAppointmentRequest) string { return r.ProviderID }},
}

// FirstMissingField returns the name of the first required field that is
// empty, or "" when the request is complete.
func (r *UpdateAppointmentRequest) FirstMissingField() string {
	for _, f := range requiredAppointmentFields {
		if f.value(r) == "" {
			return f.name
		}
	}
	return ""
}

// AppointmentFilters narrows the appointment listing. Empty values are
// skipped.
type AppointmentFilters struct {
	FacilityID string
	ProviderID string
	StartDate  string
	EndDate    string
}
