package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	GiftPriorityHigh   = "high"
	GiftPriorityMedium = "medium"
	GiftPriorityLow    = "low"

	GiftCategoryOther = "other"
)

// Gift позиция списка подарков
type Gift struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	WeddingSlug    string     `json:"weddingSlug" db:"wedding_slug"`
	Name           string     `json:"name" db:"name"`
	Description    string     `json:"description,omitempty" db:"description"`
	Category       string     `json:"category" db:"category"`
	Priority       string     `json:"priority" db:"priority"`
	EstimatedPrice string     `json:"estimatedPrice,omitempty" db:"estimated_price"`
	IsReceived     bool       `json:"isReceived" db:"is_received"`
	ReceivedFrom   string     `json:"receivedFrom,omitempty" db:"received_from"`
	ReceivedDate   *time.Time `json:"receivedDate,omitempty" db:"received_date"`
	Notes          string     `json:"notes,omitempty" db:"notes"`
	Order          int        `json:"order" db:"sort_order"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time  `json:"updatedAt" db:"updated_at"`
}

// GiftFilter Category "" или "all" означает без фильтра.
type GiftFilter struct {
	Category string
	Received *bool
}

type GiftTotals struct {
	Total    int `json:"total"`
	Received int `json:"received"`
	Pending  int `json:"pending"`
}

type GiftCategoryTotals struct {
	Total    int `json:"total"`
	Received int `json:"received"`
}

type GiftStats struct {
	Overview   GiftTotals                    `json:"overview"`
	Categories map[string]GiftCategoryTotals `json:"categories"`
}
