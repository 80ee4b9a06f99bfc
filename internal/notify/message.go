package notify

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/BruksfildServices01/barbearia-app/internal/models"
)

// ConfirmationMessage monta o texto pré-preenchido de confirmação do
// agendamento (id, nome, serviço, data, horário, valor).
func ConfirmationMessage(ap models.Appointment) string {
	date, timeOfDay := splitDateTime(ap.DateTime)

	return fmt.Sprintf(
		"Olá! Gostaria de confirmar meu agendamento:\n\n"+
			"ID: %d\nNome: %s\nServiço: %s\nData: %s\nHorário: %s\nValor: R$ %.2f",
		ap.ID, ap.ClientName, ap.ServiceName, date, timeOfDay, ap.Price,
	)
}

// WhatsAppURL gera o deep link wa.me para o contato configurado da
// barbearia. Disparar o link é responsabilidade do cliente; o sistema
// não aguarda entrega nem confirmação.
func WhatsAppURL(contact string, message string) string {
	return fmt.Sprintf(
		"https://wa.me/%s?text=%s",
		contact,
		url.QueryEscape(message),
	)
}

func splitDateTime(dateTime string) (string, string) {
	parts := strings.SplitN(dateTime, " ", 2)
	if len(parts) != 2 {
		return dateTime, ""
	}
	return parts[0], parts[1]
}
