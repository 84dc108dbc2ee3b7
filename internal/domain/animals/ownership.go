package animals

import "context"

// OwnerOf expone el ownerUserID de un animal.
// training lo consume vía interfaz para chequear dueño sin depender del Service entero.
func (s *Service) OwnerOf(ctx context.Context, animalID string) (string, error) {
	a, err := s.GetByID(ctx, animalID)
	if err != nil {
		return "", err
	}
	return a.OwnerUserID, nil
}
