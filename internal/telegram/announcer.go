// Package telegramBot posts published events to a campus announcement
// channel. The announcer is optional: without a token it is a no-op and
// publishing proceeds without it.
package telegramBot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/zakiyahfaroo/HuskySync/internal/config"
	"github.com/zakiyahfaroo/HuskySync/internal/models/domain"
	"github.com/zakiyahfaroo/HuskySync/internal/utils"
)

type Announcer struct {
	logger *slog.Logger
	cfg    *config.Config
	bot    *tgbotapi.BotAPI
}

// New creates the announcer. When the bot is disabled or unconfigured
// the returned announcer silently drops announcements.
func New(logger *slog.Logger, cfg *config.Config) (*Announcer, error) {
	op := "telegramBot.New()"
	log := logger.With(slog.String("op", op))

	a := &Announcer{
		logger: logger,
		cfg:    cfg,
	}

	if !cfg.Bot.Enabled || cfg.Bot.TgbotApiToken == "" {
		log.Info("telegram announcer disabled")
		return a, nil
	}

	bot, err := tgbotapi.NewBotAPI(cfg.Bot.TgbotApiToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	a.bot = bot

	log.Info("telegram announcer created", slog.String("botName", bot.Self.UserName))
	return a, nil
}

// AnnounceEvent posts the event to the configured channel.
func (a *Announcer) AnnounceEvent(event domain.Event) error {
	op := "Announcer.AnnounceEvent()"

	if a.bot == nil {
		return nil
	}

	msg := tgbotapi.NewMessage(a.cfg.Bot.ChannelID, formatAnnouncement(event))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true

	if _, err := a.bot.Send(msg); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	a.logger.Debug("event announced",
		slog.String("op", op),
		slog.String("eventID", event.ID.String()),
	)
	return nil
}

func formatAnnouncement(event domain.Event) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📣 <b>%s</b>\n", event.Title)
	fmt.Fprintf(&b, "by %s\n\n", event.Organizer)
	fmt.Fprintf(&b, "🗓 %s, %s – %s\n",
		event.Date,
		utils.FormatTime12(event.StartTime),
		utils.FormatTime12(event.EndTime),
	)
	fmt.Fprintf(&b, "📍 %s\n", event.Location)

	if len(event.Tags) > 0 {
		parts := make([]string, len(event.Tags))
		for i, t := range event.Tags {
			parts[i] = "#" + strings.ReplaceAll(t.String(), " ", "")
		}
		fmt.Fprintf(&b, "\n%s\n", strings.Join(parts, " "))
	}

	if event.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", event.Description)
	}

	return b.String()
}

func (a *Announcer) Shutdown(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("force exit telegram announcer: %w", ctx.Err())
	default:
		if a.bot != nil {
			a.bot.StopReceivingUpdates()
		}
		return nil
	}
}
