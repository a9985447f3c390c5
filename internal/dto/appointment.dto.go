package dto

import "time"

type PetRefDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Species   string `json:"species"`
	TutorID   string `json:"tutor_id"`
	TutorName string `json:"tutor_name"`
}

type ProviderRefDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type AppointmentItemDTO struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	DurationMin int       `json:"duration_min"`
	Reason      string    `json:"reason"`
	Notes       string    `json:"notes"`
	Location    string    `json:"location"`
	Price       float64   `json:"price"`
	Status      string    `json:"status"`
	IsRated     bool      `json:"is_rated"`

	Pet      PetRefDTO      `json:"pet"`
	Provider ProviderRefDTO `json:"provider"`

	// presente apenas na listagem por tutor
	IsReviewed *bool `json:"is_reviewed,omitempty"`
}

// AppointmentPage é o envelope de paginação das listagens.
type AppointmentPage struct {
	Items []AppointmentItemDTO `json:"items"`
	Total int64                `json:"total"`
	Page  int                  `json:"page"`
	Limit int                  `json:"limit"`
	Pages int                  `json:"pages"`
}

type TodayCountersDTO struct {
	Total     int64 `json:"total"`
	Confirmed int64 `json:"confirmed"`
}
