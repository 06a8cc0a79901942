package dto

import "time"

// TimelineEventRequest используется и для создания, и для полной замены события.
type TimelineEventRequest struct {
	Title         string    `json:"title" validate:"required,min=2,max=200"`
	Time          time.Time `json:"time" validate:"required"`
	Location      string    `json:"location" validate:"required,min=2,max=200"`
	Address       string    `json:"address,omitempty" validate:"max=300"`
	Description   string    `json:"description,omitempty" validate:"max=1000"`
	EventType     string    `json:"eventType,omitempty" validate:"omitempty,oneof=ceremony reception engagement henna photos other"`
	GoogleMapsURL string    `json:"googleMapsUrl,omitempty" validate:"omitempty,url"`
	DressCode     string    `json:"dressCode,omitempty" validate:"max=200"`
	IsMainEvent   bool      `json:"isMainEvent"`
	Order         int       `json:"order" validate:"min=0"`
}
