package uid

import "github.com/google/uuid"

// GenerateGameID returns a random identifier for a new game session.
func GenerateGameID() string {
	return uuid.NewString()
}

// IsGameID reports whether id has the shape of a generated game ID.
func IsGameID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
