package domain

import "github.com/google/uuid"

// IsValidID проверяет, что идентификатор записи является UUID
func IsValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
