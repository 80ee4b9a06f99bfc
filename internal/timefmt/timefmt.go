package timefmt

import "time"

const DefaultTimezone = "America/Sao_Paulo"

const (
	DateLayout     = "02/01/2006"
	DateTimeLayout = "02/01/2006 15:04"
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

// FormatDate renderiza a data no formato canônico "DD/MM/YYYY" usado em
// todas as comparações de agenda.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatDateTime renderiza data e hora como "DD/MM/YYYY HH:mm".
func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

var dayNames = []string{
	"Domingo", "Segunda", "Terça", "Quarta", "Quinta", "Sexta", "Sábado",
}

func DayName(t time.Time) string {
	return dayNames[int(t.Weekday())]
}

// ParseDate valida uma data "DD/MM/YYYY".
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, Location(DefaultTimezone))
}
