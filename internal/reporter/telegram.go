package reporter

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramReporter pushes the end-of-run summary to a chat. Optional:
// a nil reporter is valid and drops everything.
type TelegramReporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramReporter(token string, chatID int64) (*TelegramReporter, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	return &TelegramReporter{
		bot:    bot,
		chatID: chatID,
	}, nil
}

func (t *TelegramReporter) SendMessage(text string) error {
	if t == nil {
		return nil
	}
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "HTML" //use HTML for bold/italic
	_, err := t.bot.Send(msg)
	return err
}

// SendSummary reports the aggregate crawl counts.
func (t *TelegramReporter) SendSummary(accepted, rejectedShort, rejectedForeign, skipped int, failures []string) error {
	if t == nil {
		return nil
	}
	text := fmt.Sprintf(
		"📊 <b>Crawl finished</b>\n"+
			"✅ Accepted: %d\n"+
			"⏭ Rejected (short): %d\n"+
			"⏭ Rejected (foreign): %d\n"+
			"⚠️ Skipped: %d",
		accepted, rejectedShort, rejectedForeign, skipped,
	)
	if len(failures) > 0 {
		text += "\n❌ Failed categories:"
		for _, name := range failures {
			text += "\n  • " + name
		}
	}
	return t.SendMessage(text)
}

func (t *TelegramReporter) SendError(errReq error) error {
	if t == nil {
		return nil
	}
	text := fmt.Sprintf("⚠️ <b>Crawler Error</b>:\n%v", errReq)
	return t.SendMessage(text)
}
