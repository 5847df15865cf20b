package notify

import (
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// TelegramNotifier pushes messages to a Telegram chat. The destination is the
// numeric chat ID as a string.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger *logrus.Logger
}

func NewTelegramNotifier(token string) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	logger.WithField("account", bot.Self.UserName).Info("Telegram notifier initialized")

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) Send(destination, message string) error {
	chatID, err := strconv.ParseInt(destination, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid telegram chat id '%s': %w", destination, err)
	}

	msg := tgbotapi.NewMessage(chatID, message)
	if _, err := n.bot.Send(msg); err != nil {
		n.logger.WithError(err).Error("Failed to send telegram message")
		return err
	}

	n.logger.WithField("chat_id", chatID).Debug("Telegram message sent")
	return nil
}
