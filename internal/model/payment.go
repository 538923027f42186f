package model

// Constants stamped onto every patient payment. These match the accounting
// conventions of the host EMR's receivables tables.
const (
	PaymentTypePatient    = "patient"
	AdjustmentCodePatient = "patient_payment"
	AccountCodePP         = "PP"
)

// RecordPaymentBody is the POST body for recording a patient payment.
type RecordPaymentBody struct {
	Amount      float64 `json:"amount" binding:"required"`
	Method      string  `json:"method" binding:"required"`
	Source      string  `json:"source" binding:"required"`
	Description string  `json:"description"`
}

// PaymentRequest is the validated recording request handed to the payment
// service.
type PaymentRequest struct {
	PatientID   int64
	EncounterID int64
	Amount      float64
	Method      string
	Source      string
	Description string
}

// PaymentPosting carries everything the ledger store needs to write one
// payment across ar_session, ar_activity and payments.
type PaymentPosting struct {
	PatientID   int64
	EncounterID int64
	Amount      float64
	Method      string
	Source      string
	Description string
	User        string
	UserID      int64
}

// LedgerIDs reports the identifiers assigned by a successful posting.
type LedgerIDs struct {
	SessionID  int64
	PaymentID  int64
	SequenceNo int64
}

// PaymentReceipt is returned to the caller after a payment is recorded.
// Only the payment id and message go over the wire.
type PaymentReceipt struct {
	PaymentID int64  `json:"payment_id"`
	SessionID int64  `json:"-"`
	Message   string `json:"message"`
}
