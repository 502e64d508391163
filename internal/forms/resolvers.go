package forms

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gql_subgraphs/internal/database"
)

// ResolveRequestByID returns the request with id, or nil when there is none.
func ResolveRequestByID(session *gorm.DB, id uuid.UUID) (*Request, error) {
	return database.ResolveByID[Request](session, id)
}

// ResolveRequestAll returns a page of requests.
func ResolveRequestAll(session *gorm.DB, skip, limit int) ([]*Request, error) {
	return database.ResolvePage[Request](session, skip, limit)
}

// ResolveRequestsForUser returns the requests filed by a user.
func ResolveRequestsForUser(session *gorm.DB, userID uuid.UUID) ([]*Request, error) {
	return database.ResolveByForeignKey[Request](session, "user_id", userID)
}
