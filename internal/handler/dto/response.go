package dto

import (
	"time"

	"github.com/youngicthub/CelebBooker/internal/domain"
	"github.com/youngicthub/CelebBooker/internal/pricing"
	"github.com/youngicthub/CelebBooker/internal/wizard"
)

const dateLayout = "2006-01-02"

type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

type SignInResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
	Role  string       `json:"role"`
}

type CelebrityResponse struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Category        string            `json:"category"`
	Description     string            `json:"description"`
	ImageURL        string            `json:"image_url"`
	HourlyRateCents int64             `json:"hourly_rate_cents"`
	Availability    string            `json:"availability"`
	Rating          float64           `json:"rating"`
	TotalBookings   int               `json:"total_bookings"`
	Specialties     []string          `json:"specialties"`
	SocialMedia     map[string]string `json:"social_media,omitempty"`
	CreatedAt       string            `json:"created_at"`
}

type PackageResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Duration   string   `json:"duration"`
	PriceCents int64    `json:"price_cents"`
	Features   []string `json:"features"`
}

type CelebrityDetailsResponse struct {
	Celebrity CelebrityResponse `json:"celebrity"`
	Packages  []PackageResponse `json:"packages"`
}

type EventDetailsResponse struct {
	EventDate       string `json:"event_date,omitempty"`
	EventTime       string `json:"event_time,omitempty"`
	EventLocation   string `json:"event_location,omitempty"`
	EventType       string `json:"event_type,omitempty"`
	GuestCount      int    `json:"guest_count,omitempty"`
	SpecialRequests string `json:"special_requests,omitempty"`
}

type ContactInfoResponse struct {
	ContactName  string `json:"contact_name,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`
}

type DraftResponse struct {
	ID            string               `json:"id"`
	CelebrityID   string               `json:"celebrity_id"`
	CelebrityName string               `json:"celebrity_name"`
	Package       string               `json:"package"`
	PackageName   string               `json:"package_name"`
	Step          int                  `json:"step"`
	StepName      string               `json:"step_name"`
	Event         EventDetailsResponse `json:"event"`
	Contact       ContactInfoResponse  `json:"contact"`
	PaymentMethod string               `json:"payment_method,omitempty"`
	SubtotalCents int64                `json:"subtotal_cents"`
	FeeCents      int64                `json:"fee_cents"`
	TotalCents    int64                `json:"total_cents"`
	Reference     string               `json:"reference,omitempty"`
}

type BookingResponse struct {
	ID            string               `json:"id"`
	UserID        string               `json:"user_id"`
	CelebrityID   string               `json:"celebrity_id"`
	CelebrityName string               `json:"celebrity_name"`
	PackageName   string               `json:"package_name"`
	Event         EventDetailsResponse `json:"event"`
	Contact       ContactInfoResponse  `json:"contact"`
	AmountCents   int64                `json:"amount_cents"`
	PaymentMethod string               `json:"payment_method"`
	Status        string               `json:"status"`
	AdminNotes    *string              `json:"admin_notes"`
	CreatedAt     string               `json:"created_at"`
	UpdatedAt     string               `json:"updated_at"`
}

type StatsResponse struct {
	Total        int   `json:"total"`
	Pending      int   `json:"pending"`
	Approved     int   `json:"approved"`
	RevenueCents int64 `json:"revenue_cents"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func ToCelebrityResponse(c *domain.Celebrity) CelebrityResponse {
	return CelebrityResponse{
		ID:              c.ID,
		Name:            c.Name,
		Category:        c.Category,
		Description:     c.Description,
		ImageURL:        c.ImageURL,
		HourlyRateCents: int64(c.HourlyRate),
		Availability:    string(c.Availability),
		Rating:          c.Rating,
		TotalBookings:   c.TotalBookings,
		Specialties:     c.Specialties,
		SocialMedia:     c.SocialMedia,
		CreatedAt:       c.CreatedAt.Format(time.RFC3339),
	}
}

func ToPackageResponse(p pricing.Package) PackageResponse {
	return PackageResponse{
		ID:         string(p.ID),
		Name:       p.Name,
		Duration:   p.Duration,
		PriceCents: int64(p.Price),
		Features:   p.Features,
	}
}

func toEventResponse(e domain.EventDetails) EventDetailsResponse {
	resp := EventDetailsResponse{
		EventTime:       e.Time,
		EventLocation:   e.Location,
		EventType:       e.Type,
		GuestCount:      e.GuestCount,
		SpecialRequests: e.SpecialRequests,
	}
	if !e.Date.IsZero() {
		resp.EventDate = e.Date.Format(dateLayout)
	}
	return resp
}

func toContactResponse(c domain.ContactInfo) ContactInfoResponse {
	return ContactInfoResponse{
		ContactName:  c.Name,
		ContactEmail: c.Email,
		ContactPhone: c.Phone,
	}
}

func ToDraftResponse(d *wizard.Draft) DraftResponse {
	return DraftResponse{
		ID:            d.ID,
		CelebrityID:   d.CelebrityID,
		CelebrityName: d.CelebrityName,
		Package:       string(d.PackageID),
		PackageName:   d.PackageName,
		Step:          int(d.Step),
		StepName:      d.Step.String(),
		Event:         toEventResponse(d.Event),
		Contact:       toContactResponse(d.Contact),
		PaymentMethod: string(d.Payment.Method),
		SubtotalCents: int64(d.Subtotal()),
		FeeCents:      int64(d.Fee()),
		TotalCents:    int64(d.Total()),
		Reference:     d.Reference,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		UserID:        b.UserID,
		CelebrityID:   b.CelebrityID,
		CelebrityName: b.CelebrityName,
		PackageName:   b.PackageName,
		Event:         toEventResponse(b.Event),
		Contact:       toContactResponse(b.Contact),
		AmountCents:   int64(b.Amount),
		PaymentMethod: string(b.PaymentMethod),
		Status:        string(b.Status),
		AdminNotes:    b.AdminNotes,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     b.UpdatedAt.Format(time.RFC3339),
	}
}

func ToStatsResponse(s domain.BookingStats) StatsResponse {
	return StatsResponse{
		Total:        s.Total,
		Pending:      s.Pending,
		Approved:     s.Approved,
		RevenueCents: int64(s.Revenue),
	}
}
