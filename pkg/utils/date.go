package utils

import "time"

// ParseDate interpreta uma data yyyy-mm-dd na meia-noite do fuso local.
// String vazia devolve a data zero, sem erro.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}
