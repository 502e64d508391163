// Package publications declares publications, their types and the authors
// linking users to them.
package publications

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"gql_subgraphs/internal/database"
)

// User is owned by another subgraph; only its id lives here.
type User struct {
	database.Model

	Authorships []Author `gorm:"foreignKey:UserID"`
}

func (User) TableName() string { return "users" }

type Publication struct {
	database.Model
	Name          string
	Place         string
	PublishedDate *time.Time `gorm:"type:date;column:published_date"`
	Reference     string
	ExternalID    string `gorm:"column:externalId;index"`
	Valid         *bool

	PublicationTypeID uuid.UUID        `gorm:"type:uuid;not null;column:publication_type_id"`
	PublicationType   *PublicationType `gorm:"foreignKey:PublicationTypeID"`

	Authors []Author `gorm:"foreignKey:PublicationID"`
}

func (Publication) TableName() string { return "publications" }

// Author is one user's share in one publication.
type Author struct {
	database.Model
	Order      *int32              `gorm:"column:order"`
	Share      decimal.NullDecimal `gorm:"type:numeric"`
	ExternalID string              `gorm:"column:externalId;index"`

	UserID uuid.UUID `gorm:"type:uuid;not null;column:user_id"`
	User   *User     `gorm:"foreignKey:UserID"`

	PublicationID uuid.UUID    `gorm:"type:uuid;not null;column:publication_id"`
	Publication   *Publication `gorm:"foreignKey:PublicationID"`
}

func (Author) TableName() string { return "authors" }

type PublicationType struct {
	database.Model
	Type string

	Publications []Publication `gorm:"foreignKey:PublicationTypeID"`
}

func (PublicationType) TableName() string { return "publication_types" }

// Models lists every table of the domain in creation order.
func Models() []any {
	return []any{&User{}, &PublicationType{}, &Publication{}, &Author{}}
}
