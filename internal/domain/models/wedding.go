package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultTheme          = "gold"
	DefaultPrimaryColor   = "#D4AF37"
	DefaultSecondaryColor = "#F5F5DC"
)

var slugRe = regexp.MustCompile(`^[a-z0-9-]+$`)

// ValidSlug проверяет формат slug свадьбы.
func ValidSlug(slug string) bool {
	return slugRe.MatchString(slug)
}

type CoupleNames struct {
	Groom string `json:"groom"`
	Bride string `json:"bride"`
}

// WeddingConfig хранится в JSONB-колонке config.
type WeddingConfig struct {
	Theme          string `json:"theme"`
	BgMusicURL     string `json:"bgMusicUrl,omitempty"`
	IsPrivate      bool   `json:"isPrivate"`
	PasscodeHash   string `json:"passcodeHash,omitempty"`
	CustomDomain   string `json:"customDomain,omitempty"`
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
}

// Wedding представляет тенанта: одну свадьбу со своим slug и API-ключом
type Wedding struct {
	ID          uuid.UUID     `json:"id" db:"id"`
	Slug        string        `json:"slug" db:"slug"`
	CoupleNames CoupleNames   `json:"coupleNames" db:"-"`
	WeddingDate time.Time     `json:"weddingDate" db:"wedding_date"`
	Config      WeddingConfig `json:"config" db:"config"`
	APIKeyHash  string        `json:"-" db:"api_key_hash"`
	IsActive    bool          `json:"isActive" db:"is_active"`
	ExpiresAt   time.Time     `json:"expiresAt" db:"expires_at"`
	CreatedAt   time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time     `json:"updatedAt" db:"updated_at"`
}

// Usable сообщает, доступен ли тенант через аутентифицированные маршруты в момент now.
func (w *Wedding) Usable(now time.Time) bool {
	return w.IsActive && now.Before(w.ExpiresAt)
}

// PublicConfig то, что отдается публичному фронтенду: без ключей и хэша пасскода.
type PublicConfig struct {
	Slug        string        `json:"slug"`
	CoupleNames CoupleNames   `json:"coupleNames"`
	WeddingDate time.Time     `json:"weddingDate"`
	Config      WeddingConfig `json:"config"`
	IsActive    bool          `json:"isActive"`
}

// Redacted копия для ответов API без хэша пасскода.
func (w Wedding) Redacted() Wedding {
	w.Config.PasscodeHash = ""
	return w
}

func (w *Wedding) PublicConfig() PublicConfig {
	cfg := w.Config
	cfg.PasscodeHash = ""

	return PublicConfig{
		Slug:        w.Slug,
		CoupleNames: w.CoupleNames,
		WeddingDate: w.WeddingDate,
		Config:      cfg,
		IsActive:    w.IsActive,
	}
}

// Value реализует driver.Valuer для сериализации WeddingConfig в JSONB
func (c WeddingConfig) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan реализует sql.Scanner для десериализации JSONB в WeddingConfig
func (c *WeddingConfig) Scan(value interface{}) error {
	if value == nil {
		*c = WeddingConfig{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	}

	return errors.New("wedding config: unsupported scan type")
}

// WithDefaults заполняет пустые поля значениями по умолчанию.
func (c WeddingConfig) WithDefaults() WeddingConfig {
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
	if c.PrimaryColor == "" {
		c.PrimaryColor = DefaultPrimaryColor
	}
	if c.SecondaryColor == "" {
		c.SecondaryColor = DefaultSecondaryColor
	}

	return c
}

// WeddingStats агрегированная статистика тенанта для супер-админа.
type WeddingStats struct {
	Guests         GuestStats                    `json:"guests"`
	TimelineEvents int                           `json:"timelineEvents"`
	Media          map[MediaCategory]MediaTotals `json:"media"`
	Gifts          GiftTotals                    `json:"gifts"`
}

type MediaTotals struct {
	Count     int   `json:"count"`
	TotalSize int64 `json:"totalSize"`
}
