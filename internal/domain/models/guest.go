package models

import (
	"time"

	"github.com/google/uuid"
)

// Guest ответ гостя на приглашение (RSVP)
type Guest struct {
	ID          uuid.UUID `json:"id" db:"id"`
	WeddingSlug string    `json:"weddingSlug" db:"wedding_slug"`
	Name        string    `json:"name" db:"name"`
	Attending   bool      `json:"attending" db:"attending"`
	PlusOne     bool      `json:"plusOne" db:"plus_one"`
	PlusOneName string    `json:"plusOneName,omitempty" db:"plus_one_name"`
	Message     string    `json:"message,omitempty" db:"message"`
	Phone       string    `json:"phone,omitempty" db:"phone"`
	Email       string    `json:"email,omitempty" db:"email"`
	SubmittedAt time.Time `json:"submittedAt" db:"submitted_at"`
}

type GuestStats struct {
	Total        int `json:"total"`
	Attending    int `json:"attending"`
	NotAttending int `json:"notAttending"`
	WithPlusOne  int `json:"withPlusOne"`
}

// CountGuests считает статистику по списку гостей.
func CountGuests(guests []Guest) GuestStats {
	stats := GuestStats{Total: len(guests)}
	for _, g := range guests {
		if g.Attending {
			stats.Attending++
		} else {
			stats.NotAttending++
		}
		if g.PlusOne {
			stats.WithPlusOne++
		}
	}

	return stats
}
