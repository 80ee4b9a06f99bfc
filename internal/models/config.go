package models

// Configuração da barbearia. Singleton: criada com defaults no primeiro
// uso e sempre substituída por inteiro.
type ShopConfig struct {
	Name         string `json:"name"`
	WhatsApp     string `json:"whatsapp"`
	PrimaryColor string `json:"primary_color"`
	OpeningTime  string `json:"opening_time"`
	ClosingTime  string `json:"closing_time"`
}
