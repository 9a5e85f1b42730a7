package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/MB-Montecillo/EMS-Webdev2/internal/domain"
)

// TelegramNotifier posts booking lifecycle updates to a configured chat.
// With an empty token it degrades to a no-op so local setups work
// without a bot.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, user *domain.User, event *domain.Event, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking confirmed*\n\n%s reserved %d slot(s) for %s on %s.",
		user.Name, booking.SlotsReserved, event.Name,
		booking.BookingDate.Format("02.01.2006"),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingUpdated(ctx context.Context, user *domain.User, event *domain.Event, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking updated*\n\n%s now holds %d slot(s) for %s on %s.",
		user.Name, booking.SlotsReserved, event.Name,
		booking.BookingDate.Format("02.01.2006"),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, user *domain.User, event *domain.Event, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking cancelled*\n\n%s released %d slot(s) for %s.",
		user.Name, booking.SlotsReserved, event.Name,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)")
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
