package dto

type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type StartDraftRequest struct {
	CelebrityID string `json:"celebrity_id" binding:"required,uuid"`
	Package     string `json:"package" binding:"required,oneof=basic standard premium"`
}

// EventDetailsRequest carries step-1 data. Nothing is hard-required; a
// provided date must be ISO (2006-01-02) and not in the past.
type EventDetailsRequest struct {
	EventDate       string `json:"event_date"`
	EventTime       string `json:"event_time"`
	EventLocation   string `json:"event_location"`
	EventType       string `json:"event_type"`
	GuestCount      int    `json:"guest_count" binding:"omitempty,gte=0"`
	SpecialRequests string `json:"special_requests"`
}

type ContactInfoRequest struct {
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email"`
	ContactPhone string `json:"contact_phone"`
}

type PaymentRequest struct {
	Method        string `json:"method" binding:"required,oneof=bank_transfer usdt btc eth"`
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	CryptoAddress string `json:"crypto_address"`
}

type ReviewRequest struct {
	Decision string `json:"decision" binding:"required,oneof=approved rejected"`
	Notes    string `json:"notes"`
}

type CelebrityRequest struct {
	Name            string            `json:"name" binding:"required"`
	Category        string            `json:"category" binding:"required"`
	Description     string            `json:"description" binding:"required"`
	ImageURL        string            `json:"image_url"`
	HourlyRateCents int64             `json:"hourly_rate_cents" binding:"required,gt=0"`
	Availability    string            `json:"availability" binding:"omitempty,oneof=available busy booked"`
	Rating          float64           `json:"rating" binding:"omitempty,gte=1,lte=5"`
	TotalBookings   int               `json:"total_bookings" binding:"omitempty,gte=0"`
	Specialties     []string          `json:"specialties"`
	SocialMedia     map[string]string `json:"social_media"`
}
