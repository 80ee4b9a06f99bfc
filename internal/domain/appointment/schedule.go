package appointment

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BruksfildServices01/barbearia-app/internal/models"
)

// Granularidade fixa da agenda.
const SlotMinutes = 30

// GenerateTimeSlots gera a sequência de horários "HH:mm" entre start
// (inclusive) e end (exclusivo), de 30 em 30 minutos. Entrada
// degenerada (start >= end) produz lista vazia.
func GenerateTimeSlots(start, end string) []string {
	startHour, startMin := parseHM(start)
	endHour, endMin := parseHM(end)

	slots := []string{}

	curHour := startHour
	curMin := startMin

	for curHour < endHour || (curHour == endHour && curMin < endMin) {
		slots = append(slots, fmt.Sprintf("%02d:%02d", curHour, curMin))

		curMin += SlotMinutes
		if curMin >= 60 {
			curMin -= 60
			curHour++
		}
	}

	return slots
}

func parseHM(hm string) (int, int) {
	parts := strings.SplitN(hm, ":", 2)
	if len(parts) != 2 {
		return 0, 0
	}
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	return h, m
}

// IsSlotAvailable decide se o par data+hora está livre. O horário só é
// considerado ocupado por agendamentos scheduled ou pending: cancelados
// e concluídos liberam o slot para nova reserva.
//
// A comparação é igualdade exata da string "DD/MM/YYYY HH:mm".
func IsSlotAvailable(appointments []models.Appointment, date, timeOfDay string) bool {
	dateTime := date + " " + timeOfDay

	for _, ap := range appointments {
		if ap.DateTime != dateTime {
			continue
		}
		if ap.Status == string(StatusScheduled) || ap.Status == string(StatusPending) {
			return false
		}
	}

	return true
}

// NextID devolve o próximo identificador sequencial: 1 para lista
// vazia, max+1 caso contrário. Seguro apenas sob escritor único.
func NextID(appointments []models.Appointment) int {
	maxID := 0
	for _, ap := range appointments {
		if ap.ID > maxID {
			maxID = ap.ID
		}
	}
	return maxID + 1
}
