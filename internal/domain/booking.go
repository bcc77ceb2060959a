package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusApproved  BookingStatus = "approved"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusCompleted BookingStatus = "completed"
)

type ReviewDecision string

const (
	DecisionApproved ReviewDecision = "approved"
	DecisionRejected ReviewDecision = "rejected"
)

type PaymentMethod string

const (
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentUSDT         PaymentMethod = "usdt"
	PaymentBTC          PaymentMethod = "btc"
	PaymentETH          PaymentMethod = "eth"
)

var PaymentMethods = []PaymentMethod{
	PaymentBankTransfer, PaymentUSDT, PaymentBTC, PaymentETH,
}

// PaymentDetails carries exactly one of the bank fields or the crypto
// address, selected by the payment method.
type PaymentDetails struct {
	BankName      string `json:"bank_name,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
	CryptoAddress string `json:"crypto_address,omitempty"`
}

type EventDetails struct {
	Date            time.Time `json:"date"`
	Time            string    `json:"time"`
	Location        string    `json:"location"`
	Type            string    `json:"type"`
	GuestCount      int       `json:"guest_count"`
	SpecialRequests string    `json:"special_requests"`
}

type ContactInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Booking is the durable record created on wizard submission. Celebrity
// and package names are snapshots taken at booking time and do not follow
// later catalog edits.
type Booking struct {
	ID             string         `json:"id"`
	UserID         string         `json:"user_id"`
	CelebrityID    string         `json:"celebrity_id"`
	CelebrityName  string         `json:"celebrity_name"`
	PackageName    string         `json:"package_name"`
	Event          EventDetails   `json:"event"`
	Contact        ContactInfo    `json:"contact"`
	Amount         Money          `json:"amount"`
	PaymentMethod  PaymentMethod  `json:"payment_method"`
	PaymentDetails PaymentDetails `json:"payment_details"`
	Status         BookingStatus  `json:"status"`
	AdminNotes     *string        `json:"admin_notes"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// BookingStats aggregates the admin dashboard figures. Revenue sums the
// amount over all records regardless of status.
type BookingStats struct {
	Total    int   `json:"total"`
	Pending  int   `json:"pending"`
	Approved int   `json:"approved"`
	Revenue  Money `json:"revenue"`
}
