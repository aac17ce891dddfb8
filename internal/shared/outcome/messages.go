package outcome

import "fmt"

// CountMessage renders "<verb> <n> <noun>" with number agreement, e.g.
// "Se obtuvo 1 reporte" / "Se obtuvieron 3 reportes".
func CountMessage(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("Se obtuvo 1 %s", singular)
	}
	return fmt.Sprintf("Se obtuvieron %d %s", count, plural)
}
