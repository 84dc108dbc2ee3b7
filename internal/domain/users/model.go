package users

// User es una cuenta registrada. PasswordHash nunca guarda el texto plano.
type User struct {
	ID        string
	FirstName string
	LastName  string
	Email     string

	// Vacío cuando el repo lo proyecta afuera (listados de admin).
	PasswordHash string
}
