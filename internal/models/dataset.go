package models

// Dataset é o blob principal: catálogo de serviços + lista de
// agendamentos, persistidos juntos e sempre gravados por inteiro.
type Dataset struct {
	Services     map[string]Service `json:"services"`
	Appointments []Appointment      `json:"appointments"`
}

// Catálogo inicial usado quando ainda não existe blob gravado.
func DefaultServices() map[string]Service {
	return map[string]Service{
		"1": {ID: "1", Name: "Corte Simples", Price: 30.0, DurationMin: 30},
		"2": {ID: "2", Name: "Corte + Barba", Price: 50.0, DurationMin: 45},
		"3": {ID: "3", Name: "Barba", Price: 25.0, DurationMin: 20},
		"4": {ID: "4", Name: "Corte Desfarcado", Price: 40.0, DurationMin: 60},
	}
}

func DefaultConfig() ShopConfig {
	return ShopConfig{
		Name:         "Barbearia do Carioca",
		WhatsApp:     "5521971041394",
		PrimaryColor: "#0a7ea4",
		OpeningTime:  "09:00",
		ClosingTime:  "20:00",
	}
}

func DefaultDataset() Dataset {
	return Dataset{
		Services:     DefaultServices(),
		Appointments: []Appointment{},
	}
}
