package model

import (
	"time"
)

// Conversion records one successful link conversion. Only usage metadata is
// kept; the configuration content itself is never stored.
type Conversion struct {
	ID        uint  `gorm:"primaryKey"`
	UserID    int64 `gorm:"index"`
	Protocol  string
	Source    string // origin of the request, currently always "bot"
	CreatedAt time.Time
}
