package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeCeremony   = "ceremony"
	EventTypeReception  = "reception"
	EventTypeEngagement = "engagement"
	EventTypeHenna      = "henna"
	EventTypePhotos     = "photos"
	EventTypeOther      = "other"
)

// TimelineEvent событие программы свадьбы
type TimelineEvent struct {
	ID            uuid.UUID `json:"id" db:"id"`
	WeddingSlug   string    `json:"weddingSlug" db:"wedding_slug"`
	Title         string    `json:"title" db:"title"`
	Time          time.Time `json:"time" db:"time"`
	Location      string    `json:"location" db:"location"`
	Address       string    `json:"address,omitempty" db:"address"`
	Description   string    `json:"description,omitempty" db:"description"`
	EventType     string    `json:"eventType" db:"event_type"`
	GoogleMapsURL string    `json:"googleMapsUrl,omitempty" db:"google_maps_url"`
	DressCode     string    `json:"dressCode,omitempty" db:"dress_code"`
	IsMainEvent   bool      `json:"isMainEvent" db:"is_main_event"`
	Order         int       `json:"order" db:"sort_order"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}
