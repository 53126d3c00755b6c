package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/velikanov/walkbooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramAlerter pings the operators chat about conditions that want a
// human look: seat drift repairs and failed invitation issuance.
type TelegramAlerter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramAlerter(token string, chatID int64, logger logger.Logger) (*TelegramAlerter, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, operator alerts disabled")
		return &TelegramAlerter{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramAlerter{bot: bot, chatID: chatID, logger: logger}, nil
}

func (a *TelegramAlerter) AlertDriftRepaired(ctx context.Context, report domain.ReconcileReport) {
	text := fmt.Sprintf(
		"*Seat drift repaired*\n\nWalks repaired: %d\nSeats adjusted: %d\nWorth checking recent payment webhooks and manual edits.",
		report.WalksRepaired, report.SeatsAdjusted,
	)
	if report.Oversold > 0 {
		text += fmt.Sprintf("\n\n⚠️ %d walk(s) oversold: confirmed seats exceed capacity, availability pinned at 0.", report.Oversold)
	}
	a.send(ctx, text)
}

func (a *TelegramAlerter) AlertIssueFailed(ctx context.Context, walkID string, err error) {
	text := fmt.Sprintf(
		"*Invitation issuance failed*\n\nWalk: %s\nError: %s",
		walkID, err.Error(),
	)
	a.send(ctx, text)
}

func (a *TelegramAlerter) send(ctx context.Context, text string) {
	if a.bot == nil {
		a.logger.Debug("operator alert skipped (bot disabled)", logger.String("text", text))
		return
	}

	if a.chatID == 0 {
		a.logger.Debug("operator alert skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		a.logger.Debug("operator alert skipped (context cancelled)")
		return
	}

	msg := tgbotapi.NewMessage(a.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := a.bot.Send(msg); err != nil {
		a.logger.Error("failed to send operator alert",
			logger.Int64("chat_id", a.chatID),
			logger.String("error", err.Error()),
		)
	}
}
