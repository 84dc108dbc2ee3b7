package animals

import "time"

// Animal es un animal en entrenamiento. El dueño queda fijo al crearlo.
type Animal struct {
	ID          string
	OwnerUserID string

	Name string

	// HoursTrained arranca en 0; ningún endpoint lo incrementa.
	HoursTrained float64

	DateOfBirth time.Time
}
