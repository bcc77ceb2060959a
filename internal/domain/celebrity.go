package domain

import "time"

type Availability string

const (
	AvailabilityAvailable Availability = "available"
	AvailabilityBusy      Availability = "busy"
	AvailabilityBooked    Availability = "booked"
)

// CategoryAll is the filter sentinel that matches every category.
const CategoryAll = "All"

var Categories = []string{
	"Actress",
	"Musician",
	"Model",
	"Athlete",
	"Influencer",
	"Comedian",
}

type Celebrity struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Category      string            `json:"category"`
	Description   string            `json:"description"`
	ImageURL      string            `json:"image_url"`
	HourlyRate    Money             `json:"hourly_rate"`
	Availability  Availability      `json:"availability"`
	Rating        float64           `json:"rating"`
	TotalBookings int               `json:"total_bookings"`
	Specialties   []string          `json:"specialties"`
	SocialMedia   map[string]string `json:"social_media,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

type CelebrityInput struct {
	Name          string
	Category      string
	Description   string
	ImageURL      string
	HourlyRate    Money
	Availability  Availability
	Rating        float64
	TotalBookings int
	Specialties   []string
	SocialMedia   map[string]string
}
