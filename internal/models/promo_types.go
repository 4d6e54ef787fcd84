package models

// PromoSetting is the singleton row (id = 1) in 'promo_settings'.
// It is pre-seeded and only ever updated.
type PromoSetting struct {
	ID       int64  `json:"id" db:"id"`
	Message  string `json:"message" db:"message"`
	EndTime  string `json:"end_time" db:"end_time"`
	IsActive bool   `json:"is_active" db:"is_active"`
}
