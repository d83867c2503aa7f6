package presenter

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"alafaq/internal/domain"
	"alafaq/internal/metrics"
	"alafaq/internal/models"
)

// AlertCenter shows transient notifications on the surface. Each alert
// dismisses itself after the TTL; the timer is fire-and-forget and never
// cancelled, and duplicate alerts simply stack.
type AlertCenter struct {
	surface domain.Surface
	ttl     time.Duration
	logger  *zerolog.Logger
}

func NewAlertCenter(surface domain.Surface, ttl time.Duration, logger *zerolog.Logger) *AlertCenter {
	if ttl <= 0 {
		ttl = models.DefaultAlertTTL
	}
	return &AlertCenter{
		surface: surface,
		ttl:     ttl,
		logger:  logger,
	}
}

// Error shows a transient error notification.
func (c *AlertCenter) Error(message string) {
	c.show(domain.AlertError, message)
}

// Success shows a transient success notification.
func (c *AlertCenter) Success(message string) {
	c.show(domain.AlertSuccess, message)
}

func (c *AlertCenter) show(level domain.AlertLevel, message string) {
	alert := domain.Alert{
		ID:      uuid.NewString(),
		Level:   level,
		Message: message,
	}

	c.surface.ShowAlert(alert)
	metrics.IncAlert(string(level))
	c.logger.Debug().Str("level", string(level)).Str("alert_id", alert.ID).Msg("alert shown")

	time.AfterFunc(c.ttl, func() {
		c.surface.HideAlert(alert.ID)
	})
}
