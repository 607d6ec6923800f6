package utils

import "time"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParseDateRange interpreta os parâmetros from/to de uma consulta.
// Quando "to" está vazio assume o dia atual; quando "from" está vazio assume
// o primeiro dia do mês de "to".
func ParseDateRange(fromStr, toStr string) (time.Time, time.Time, error) {
	var from, to time.Time

	if toStr == "" {
		to = time.Now().UTC().Truncate(24 * time.Hour)
	} else {
		parsed, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return from, to, err
		}
		to = parsed
	}

	if fromStr == "" {
		from = time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, time.UTC)
	} else {
		parsed, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return from, to, err
		}
		from = parsed
	}

	return from, to, nil
}
