package training

import "time"

// Log es una sesión de entrenamiento registrada por el dueño del animal.
type Log struct {
	ID string

	Date        time.Time
	Description string
	Hours       float64

	AnimalID string
	UserID   string

	// VideoURL apunta a media externa; ningún endpoint lo completa todavía.
	VideoURL string
}
