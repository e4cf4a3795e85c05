package helpers

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Chippsss/sms-backend/internal/pkg/apperrors"
)

// DateLayout is the wire format for calendar dates (attendance filters etc).
const DateLayout = "2006-01-02"

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// ParseDate parses a YYYY-MM-DD date string. A malformed value is rejected
// with ErrInvalidInput rather than silently ignored.
func ParseDate(dateStr string) (time.Time, error) {
	date, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, apperrors.NewInvalidInputError("invalid date, expected YYYY-MM-DD: " + dateStr)
	}
	return date, nil
}
