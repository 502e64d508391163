// Package personalities declares the personal-record tables (ranks, studies,
// certificates, medals, work history, related documents) hanging off a user.
package personalities

import (
	"time"

	"github.com/google/uuid"

	"gql_subgraphs/internal/database"
)

// User is owned by another subgraph; the children below reference its id.
type User struct {
	database.Model

	Ranks         []RankHistory `gorm:"foreignKey:UserID"`
	Studies       []Study       `gorm:"foreignKey:UserID"`
	Certificates  []Certificate `gorm:"foreignKey:UserID"`
	Medals        []Medal       `gorm:"foreignKey:UserID"`
	WorkHistories []WorkHistory `gorm:"foreignKey:UserID"`
	RelatedDocs   []RelatedDoc  `gorm:"foreignKey:UserID"`
}

func (User) TableName() string { return "users" }

type RankHistory struct {
	database.Model
	Name  string
	Start *time.Time
	End   *time.Time

	UserID uuid.UUID `gorm:"type:uuid;not null;column:user_id"`
	User   *User     `gorm:"foreignKey:UserID"`
}

func (RankHistory) TableName() string { return "personalitiesRanks" }

type Study struct {
	database.Model
	Place   string
	Program string
	Start   *time.Time
	End     *time.Time

	UserID uuid.UUID `gorm:"type:uuid;not null;column:user_id"`
	User   *User     `gorm:"foreignKey:UserID"`
}

func (Study) TableName() string { return "personalitiesStudies" }

type Certificate struct {
	database.Model
	Name          string
	Level         string
	ValidityStart *time.Time `gorm:"column:validity_start"`
	ValidityEnd   *time.Time `gorm:"column:validity_end"`

	UserID uuid.UUID `gorm:"type:uuid;not null;column:user_id"`
	User   *User     `gorm:"foreignKey:UserID"`

	CertificateTypeID *uuid.UUID       `gorm:"type:uuid;column:certificateType_id"`
	CertificateType   *CertificateType `gorm:"foreignKey:CertificateTypeID"`
}

// The table name keeps its historical spelling.
func (Certificate) TableName() string { return "personalitiesCertficates" }

type CertificateType struct {
	database.Model
	Name   string
	EnName string `gorm:"column:en_name"`

	Certificates []Certificate `gorm:"foreignKey:CertificateTypeID"`
}

func (CertificateType) TableName() string { return "personalitiesCertificateTypes" }

type Medal struct {
	database.Model
	Name string
	Year *int32

	UserID uuid.UUID `gorm:"type:uuid;not null;column:user_id"`
	User   *User     `gorm:"foreignKey:UserID"`

	MedalTypeID *uuid.UUID `gorm:"type:uuid;column:medalType_id"`
	MedalType   *MedalType `gorm:"foreignKey:MedalTypeID"`
}

func (Medal) TableName() string { return "personalitiesMedals" }

type MedalType struct {
	database.Model
	Name string

	MedalTypeGroupID *uuid.UUID      `gorm:"type:uuid;column:medalTypeGroup_id"`
	MedalTypeGroup   *MedalTypeGroup `gorm:"foreignKey:MedalTypeGroupID"`

	Medals []Medal `gorm:"foreignKey:MedalTypeID"`
}

func (MedalType) TableName() string { return "personalitiesMedalTypes" }

type MedalTypeGroup struct {
	database.Model
	Name string

	MedalTypes []MedalType `gorm:"foreignKey:MedalTypeGroupID"`
}

func (MedalTypeGroup) TableName() string { return "personalitiesMedalTypeGroups" }

type WorkHistory struct {
	database.Model
	Start    *time.Time
	End      *time.Time
	Position string
	ICO      string `gorm:"column:ico"`

	UserID uuid.UUID `gorm:"type:uuid;not null;column:user_id"`
	User   *User     `gorm:"foreignKey:UserID"`
}

func (WorkHistory) TableName() string { return "personalitiesWorkHistories" }

type RelatedDoc struct {
	database.Model
	Name string

	UserID uuid.UUID `gorm:"type:uuid;not null;column:user_id"`
	User   *User     `gorm:"foreignKey:UserID"`
}

func (RelatedDoc) TableName() string { return "personalitiesRelatedDocs" }

// Models lists every table of the domain in creation order.
func Models() []any {
	return []any{
		&User{},
		&CertificateType{},
		&MedalTypeGroup{},
		&MedalType{},
		&RankHistory{},
		&Study{},
		&Certificate{},
		&Medal{},
		&WorkHistory{},
		&RelatedDoc{},
	}
}
