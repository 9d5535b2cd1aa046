package utils

import "time"

// ParseDate converte uma data YYYY-MM-DD. Vazio retorna nil sem erro
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// ResolveDay converte a data enviada pelo cliente (YYYY-MM-DD) para o dia
// alvo das métricas. Entrada ausente ou inválida cai para o dia atual em vez
// de falhar, para o dashboard nunca quebrar por culpa do relógio do cliente
func ResolveDay(raw string, now time.Time) time.Time {
	if raw == "" {
		return now
	}

	day, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return now
	}

	return day
}

// ResolveMonth converte o ano-mês enviado pelo cliente (YYYY-MM) para o
// intervalo semiaberto [primeiro dia do mês, primeiro dia do mês seguinte).
// Entrada ausente ou inválida cai para o mês atual. Dezembro avança para
// janeiro do ano seguinte
func ResolveMonth(raw string, now time.Time) (start, end time.Time) {
	start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	if raw != "" {
		if parsed, err := time.Parse("2006-01", raw); err == nil {
			start = time.Date(parsed.Year(), parsed.Month(), 1, 0, 0, 0, 0, time.UTC)
		}
	}

	return start, start.AddDate(0, 1, 0)
}
