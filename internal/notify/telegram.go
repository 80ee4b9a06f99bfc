package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramSender avisa o administrador num chat do Telegram quando um
// novo agendamento entra. Opcional: só é criado se houver token e chat
// configurados.
type TelegramSender struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramSender(token string, chatID int64) (*TelegramSender, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &TelegramSender{bot: bot, chatID: chatID}, nil
}

func (t *TelegramSender) Send(ev Event) error {
	ap := ev.Appointment
	date, timeOfDay := splitDateTime(ap.DateTime)

	text := fmt.Sprintf(
		"📅 Novo agendamento — %s\n\n"+
			"ID: %d\nCliente: %s\nTelefone: %s\nServiço: %s\n"+
			"Data: %s\nHorário: %s\nValor: R$ %.2f",
		ev.ShopName,
		ap.ID, ap.ClientName, ap.ClientPhone, ap.ServiceName,
		date, timeOfDay, ap.Price,
	)

	msg := tgbotapi.NewMessage(t.chatID, text)
	_, err := t.bot.Send(msg)
	return err
}
