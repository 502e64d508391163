package personalities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gql_subgraphs/internal/database"
)

// Lookups by primary key. Each returns nil, nil when the row does not exist.

func ResolveRankHistoryByID(session *gorm.DB, id uuid.UUID) (*RankHistory, error) {
	return database.ResolveByID[RankHistory](session, id)
}

func ResolveStudyByID(session *gorm.DB, id uuid.UUID) (*Study, error) {
	return database.ResolveByID[Study](session, id)
}

func ResolveCertificateByID(session *gorm.DB, id uuid.UUID) (*Certificate, error) {
	return database.ResolveByID[Certificate](session, id)
}

func ResolveCertificateTypeByID(session *gorm.DB, id uuid.UUID) (*CertificateType, error) {
	return database.ResolveByID[CertificateType](session, id)
}

func ResolveMedalByID(session *gorm.DB, id uuid.UUID) (*Medal, error) {
	return database.ResolveByID[Medal](session, id)
}

func ResolveMedalTypeByID(session *gorm.DB, id uuid.UUID) (*MedalType, error) {
	return database.ResolveByID[MedalType](session, id)
}

func ResolveMedalTypeGroupByID(session *gorm.DB, id uuid.UUID) (*MedalTypeGroup, error) {
	return database.ResolveByID[MedalTypeGroup](session, id)
}

func ResolveWorkHistoryByID(session *gorm.DB, id uuid.UUID) (*WorkHistory, error) {
	return database.ResolveByID[WorkHistory](session, id)
}

func ResolveRelatedDocByID(session *gorm.DB, id uuid.UUID) (*RelatedDoc, error) {
	return database.ResolveByID[RelatedDoc](session, id)
}

// Pages over the shared lookup dimensions.

func ResolveCertificateTypeAll(session *gorm.DB, skip, limit int) ([]*CertificateType, error) {
	return database.ResolvePage[CertificateType](session, skip, limit)
}

func ResolveMedalTypeGroupAll(session *gorm.DB, skip, limit int) ([]*MedalTypeGroup, error) {
	return database.ResolvePage[MedalTypeGroup](session, skip, limit)
}

// Children of a user.

func ResolveRanksForUser(session *gorm.DB, userID uuid.UUID) ([]*RankHistory, error) {
	return database.ResolveByForeignKey[RankHistory](session, "user_id", userID)
}

func ResolveStudiesForUser(session *gorm.DB, userID uuid.UUID) ([]*Study, error) {
	return database.ResolveByForeignKey[Study](session, "user_id", userID)
}

func ResolveCertificatesForUser(session *gorm.DB, userID uuid.UUID) ([]*Certificate, error) {
	return database.ResolveByForeignKey[Certificate](session, "user_id", userID)
}

func ResolveMedalsForUser(session *gorm.DB, userID uuid.UUID) ([]*Medal, error) {
	return database.ResolveByForeignKey[Medal](session, "user_id", userID)
}

func ResolveWorkHistoriesForUser(session *gorm.DB, userID uuid.UUID) ([]*WorkHistory, error) {
	return database.ResolveByForeignKey[WorkHistory](session, "user_id", userID)
}

func ResolveRelatedDocsForUser(session *gorm.DB, userID uuid.UUID) ([]*RelatedDoc, error) {
	return database.ResolveByForeignKey[RelatedDoc](session, "user_id", userID)
}

// Children of a lookup dimension.

func ResolveCertificatesForType(session *gorm.DB, typeID uuid.UUID) ([]*Certificate, error) {
	return database.ResolveByForeignKey[Certificate](session, "certificateType_id", typeID)
}

func ResolveMedalsForType(session *gorm.DB, typeID uuid.UUID) ([]*Medal, error) {
	return database.ResolveByForeignKey[Medal](session, "medalType_id", typeID)
}

func ResolveMedalTypesForGroup(session *gorm.DB, groupID uuid.UUID) ([]*MedalType, error) {
	return database.ResolveByForeignKey[MedalType](session, "medalTypeGroup_id", groupID)
}
