package repository

import (
	"database/sql/driver"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"
)

type Repository struct {
	db       *pgxpool.Pool
	Wedding  WeddingRepository
	Media    MediaRepository
	Guest    GuestRepository
	Timeline TimelineRepository
	Gift     GiftRepository
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		db:       db,
		Wedding:  NewWeddingRepository(db),
		Media:    NewMediaRepository(db),
		Guest:    NewGuestRepository(db),
		Timeline: NewTimelineRepository(db),
		Gift:     NewGiftRepository(db),
	}
}

func (r *Repository) Close() {
	r.db.Close()
}

// jsonText сериализует JSONB-значение в строку для параметра запроса.
func jsonText(v driver.Valuer) (string, error) {
	raw, err := v.Value()
	if err != nil {
		return "", fmt.Errorf("failed to encode jsonb: %w", err)
	}

	b, ok := raw.([]byte)
	if !ok {
		return "", fmt.Errorf("failed to encode jsonb: unexpected value %T", raw)
	}

	return string(b), nil
}
