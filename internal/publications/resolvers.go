package publications

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"gql_subgraphs/internal/database"
)

// ResolvePublicationByID returns the publication with id, or nil.
func ResolvePublicationByID(session *gorm.DB, id uuid.UUID) (*Publication, error) {
	return database.ResolveByID[Publication](session, id)
}

// ResolvePublicationAll returns a page of publications.
func ResolvePublicationAll(session *gorm.DB, skip, limit int) ([]*Publication, error) {
	return database.ResolvePage[Publication](session, skip, limit)
}

// ResolvePublicationTypeByID returns the publication type with id, or nil.
func ResolvePublicationTypeByID(session *gorm.DB, id uuid.UUID) (*PublicationType, error) {
	return database.ResolveByID[PublicationType](session, id)
}

// ResolvePublicationTypeAll returns a page of publication types.
func ResolvePublicationTypeAll(session *gorm.DB, skip, limit int) ([]*PublicationType, error) {
	return database.ResolvePage[PublicationType](session, skip, limit)
}

// ResolvePublicationsForType lists the publications of one type.
func ResolvePublicationsForType(session *gorm.DB, typeID uuid.UUID) ([]*Publication, error) {
	return database.ResolveByForeignKey[Publication](session, "publication_type_id", typeID)
}

// ResolveAuthorByID returns the authorship with id, or nil.
func ResolveAuthorByID(session *gorm.DB, id uuid.UUID) (*Author, error) {
	return database.ResolveByID[Author](session, id)
}

// ResolveAuthorsForPublication lists authors in their declared order.
func ResolveAuthorsForPublication(session *gorm.DB, publicationID uuid.UUID) ([]*Author, error) {
	var rows []*Author
	err := session.Where("publication_id = ?", publicationID).
		Order(`"order" ASC NULLS LAST, id`).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list authors of %s: %w", publicationID, err)
	}
	return rows, nil
}

// ResolveAuthorsForUser lists a user's authorships.
func ResolveAuthorsForUser(session *gorm.DB, userID uuid.UUID) ([]*Author, error) {
	return database.ResolveByForeignKey[Author](session, "user_id", userID)
}

// TotalShare sums the shares of authors; unset shares count as zero.
func TotalShare(authors []*Author) decimal.Decimal {
	total := decimal.Zero
	for _, a := range authors {
		if a.Share.Valid {
			total = total.Add(a.Share.Decimal)
		}
	}
	return total
}
