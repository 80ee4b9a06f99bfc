package notify

import (
	"log"

	"github.com/BruksfildServices01/barbearia-app/internal/models"
)

type Event struct {
	ShopName    string
	Appointment models.Appointment
}

// Sender entrega um aviso de agendamento a um canal externo.
type Sender interface {
	Send(ev Event) error
}

// Dispatcher desacopla a notificação do fluxo de agendamento:
// fire-and-forget, nunca bloqueia nem quebra a resposta da API.
type Dispatcher struct {
	sender Sender
	queue  chan Event
}

func NewDispatcher(sender Sender) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		queue:  make(chan Event, 100), // buffer seguro
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.sender.Send(ev); err != nil {
			log.Println("notify error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil || d.sender == nil {
		return
	}

	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos a notificação (nunca quebrar API)
		log.Println("notify queue full, dropping event")
	}
}
