package models

// Serviço oferecido pela barbearia. O catálogo é pequeno e mora inteiro
// no blob de dados, indexado por ID.
type Service struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`
}
