package dto

import (
	"time"

	"wedding_service/internal/domain/models"
)

type CoupleNamesInput struct {
	Groom string `json:"groom" validate:"required,min=2,max=100"`
	Bride string `json:"bride" validate:"required,min=2,max=100"`
}

// WeddingConfigInput все поля необязательны: nil означает "не менять".
type WeddingConfigInput struct {
	Theme          *string `json:"theme,omitempty" validate:"omitempty,oneof=gold silver rose blue green purple"`
	BgMusicURL     *string `json:"bgMusicUrl,omitempty" validate:"omitempty,url"`
	IsPrivate      *bool   `json:"isPrivate,omitempty"`
	Passcode       *string `json:"passcode,omitempty" validate:"omitempty,min=4,max=20"`
	CustomDomain   *string `json:"customDomain,omitempty" validate:"omitempty,fqdn"`
	PrimaryColor   *string `json:"primaryColor,omitempty" validate:"omitempty,len=7,hexcolor"`
	SecondaryColor *string `json:"secondaryColor,omitempty" validate:"omitempty,len=7,hexcolor"`
}

type CreateWeddingRequest struct {
	Slug            string              `json:"slug" validate:"required,min=3,max=50,slug"`
	CoupleNames     CoupleNamesInput    `json:"coupleNames" validate:"required"`
	WeddingDate     time.Time           `json:"weddingDate" validate:"required"`
	Config          *WeddingConfigInput `json:"config,omitempty"`
	ExpirationYears int                 `json:"expirationYears,omitempty" validate:"omitempty,min=1,max=10"`
}

type CreateWeddingResponse struct {
	Message string          `json:"message"`
	Wedding *models.Wedding `json:"wedding"`
	// APIKey выдается один раз, в базе хранится только хэш
	APIKey string `json:"apiKey"`
}

type CoupleNamesUpdate struct {
	Groom *string `json:"groom,omitempty" validate:"omitempty,min=2,max=100"`
	Bride *string `json:"bride,omitempty" validate:"omitempty,min=2,max=100"`
}

type UpdateWeddingConfigRequest struct {
	CoupleNames *CoupleNamesUpdate  `json:"coupleNames,omitempty"`
	WeddingDate *time.Time          `json:"weddingDate,omitempty"`
	Config      *WeddingConfigInput `json:"config,omitempty"`
}

type CheckPasscodeRequest struct {
	Passcode string `json:"passcode"`
}

type CheckPasscodeResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

type QRCodeResponse struct {
	QRCode string `json:"qrCode"`
	URL    string `json:"url"`
}
