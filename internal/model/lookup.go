package model

// Category is an appointment category. Duration is stored in seconds but
// reported in minutes.
type Category struct {
	CategoryID      int64  `db:"pc_catid" json:"pc_catid"`
	Name            string `db:"pc_catname" json:"pc_catname"`
	DurationMinutes int64  `db:"pc_duration" json:"pc_duration"`
}

// Room is a patient-flow-board room option.
type Room struct {
	OptionID string `db:"option_id" json:"option_id"`
	Title    string `db:"title" json:"title"`
	Seq      int    `db:"seq" json:"seq"`
	Notes    string `db:"notes" json:"notes"`
	Activity int    `db:"activity" json:"activity"`
}

// StatusOption is an appointment status code. CheckIn marks statuses that
// count as "patient has arrived"; the flag comes from list configuration,
// not from this service.
type StatusOption struct {
	OptionID string `db:"option_id" json:"option_id"`
	Title    string `db:"title" json:"title"`
	CheckIn  bool   `db:"checkin" json:"-"`
}
