package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/nilsnoeller-tech/trading-sub000/internal/domain"
)

// PushSender delivers a push notification to a set of device tokens.
type PushSender interface {
	IsEnabled() bool
	SendMulticast(ctx context.Context, tokens []string, title, body string, data map[string]string) error
}

// Default alert thresholds.
const (
	DefaultSwingThreshold    = 70
	DefaultIntradayThreshold = 75
	DefaultCooldown          = 30 * time.Minute
)

// Notifier pushes alerts for scan results that cross the configured
// thresholds. The cooldown store keeps a symbol from re-alerting until its
// window expires; with the Redis store that survives process restarts.
type Notifier struct {
	sender            PushSender
	tokens            domain.DeviceTokenRepository
	cooldown          domain.CooldownStore
	swingThreshold    int
	intradayThreshold int
	cooldownTTL       time.Duration
	log               zerolog.Logger
}

func NewNotifier(
	sender PushSender,
	tokens domain.DeviceTokenRepository,
	cooldown domain.CooldownStore,
	swingThreshold, intradayThreshold int,
	cooldownTTL time.Duration,
	log zerolog.Logger,
) *Notifier {
	return &Notifier{
		sender:            sender,
		tokens:            tokens,
		cooldown:          cooldown,
		swingThreshold:    swingThreshold,
		intradayThreshold: intradayThreshold,
		cooldownTTL:       cooldownTTL,
		log:               log.With().Str("component", "notifier").Logger(),
	}
}

// Notify sends one alert per symbol that crossed a threshold and is not in
// cooldown. Errors are logged per symbol; one failure never blocks the rest.
func (n *Notifier) Notify(ctx context.Context, results []domain.ScanResult) {
	if n.sender == nil || !n.sender.IsEnabled() {
		return
	}

	tokens, err := n.tokens.All(ctx)
	if err != nil {
		n.log.Error().Err(err).Msg("loading device tokens")
		return
	}
	if len(tokens) == 0 {
		return
	}

	for _, r := range results {
		swingHit := r.Swing.Error == "" && r.Swing.Total >= n.swingThreshold
		intradayHit := r.Intraday.Error == "" && r.Intraday.Total >= n.intradayThreshold
		if !swingHit && !intradayHit {
			continue
		}

		active, err := n.cooldown.Active(ctx, r.Symbol)
		if err != nil {
			n.log.Warn().Str("symbol", r.Symbol).Err(err).Msg("cooldown check failed")
			continue
		}
		if active {
			continue
		}

		title, body := n.buildMessage(r, swingHit, intradayHit)
		data := map[string]string{
			"symbol":   r.Symbol,
			"swing":    fmt.Sprintf("%d", r.Swing.Total),
			"intraday": fmt.Sprintf("%d", r.Intraday.Total),
			"price":    fmt.Sprintf("%.4f", r.Price),
		}

		if err := n.sender.SendMulticast(ctx, tokens, title, body, data); err != nil {
			n.log.Error().Str("symbol", r.Symbol).Err(err).Msg("sending notification")
			continue
		}

		if err := n.cooldown.Mark(ctx, r.Symbol, n.cooldownTTL); err != nil {
			n.log.Warn().Str("symbol", r.Symbol).Err(err).Msg("marking cooldown")
		}
		n.log.Info().Str("symbol", r.Symbol).Int("devices", len(tokens)).Msg("notification sent")
	}
}

func (n *Notifier) buildMessage(r domain.ScanResult, swingHit, intradayHit bool) (string, string) {
	display := r.DisplaySymbol
	if display == "" {
		display = r.Symbol
	}

	var title string
	switch {
	case swingHit && intradayHit:
		title = fmt.Sprintf("%s: swing %d / intraday %d", display, r.Swing.Total, r.Intraday.Total)
	case swingHit:
		title = fmt.Sprintf("%s: swing setup %d", display, r.Swing.Total)
	default:
		title = fmt.Sprintf("%s: intraday setup %d", display, r.Intraday.Total)
	}

	signals := append([]string{}, r.Swing.Signals...)
	signals = append(signals, r.Intraday.Signals...)
	body := fmt.Sprintf("Price %.2f", r.Price)
	if len(signals) > 0 {
		body += " | " + strings.Join(signals, ", ")
	}
	return title, body
}
