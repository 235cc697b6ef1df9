package member

import (
	"context"

	"github.com/festivio/committee-dashboard/go-api-server/internal/model"
	"gorm.io/gorm"
)

// findAllCap bounds every full-collection fetch. Results past the cap are
// silently truncated; the dashboard never pages.
const findAllCap = 1000

// Repository is the member store contract. Services depend on this
// interface so tests can substitute an in-memory implementation.
type Repository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]model.CommitteeMember, error)
	FindByID(ctx context.Context, db *gorm.DB, id string) (*model.CommitteeMember, error)
	Insert(ctx context.Context, db *gorm.DB, member *model.CommitteeMember) error
	UpdateFields(ctx context.Context, db *gorm.DB, id string, fields map[string]interface{}) (int64, error)
	DeleteByID(ctx context.Context, db *gorm.DB, id string) (int64, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}

type memberRepository struct{}

func NewMemberRepository() Repository {
	return &memberRepository{}
}

func (m *memberRepository) FindAll(ctx context.Context, db *gorm.DB) ([]model.CommitteeMember, error) {
	var members []model.CommitteeMember
	err := db.WithContext(ctx).
		Limit(findAllCap).
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (m *memberRepository) FindByID(ctx context.Context, db *gorm.DB, id string) (*model.CommitteeMember, error) {
	var member model.CommitteeMember
	err := db.WithContext(ctx).Where("id = ?", id).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (m *memberRepository) Insert(ctx context.Context, db *gorm.DB, member *model.CommitteeMember) error {
	return db.WithContext(ctx).Create(member).Error
}

// UpdateFields applies a partial update and reports rows affected. Zero can
// mean either a missing id or no actual change; callers that need to
// distinguish must check existence first.
func (m *memberRepository) UpdateFields(ctx context.Context, db *gorm.DB, id string, fields map[string]interface{}) (int64, error) {
	result := db.WithContext(ctx).
		Model(&model.CommitteeMember{}).
		Where("id = ?", id).
		Updates(fields)
	return result.RowsAffected, result.Error
}

func (m *memberRepository) DeleteByID(ctx context.Context, db *gorm.DB, id string) (int64, error) {
	result := db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CommitteeMember{})
	return result.RowsAffected, result.Error
}

func (m *memberRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.CommitteeMember{}).
		Count(&count).Error
	return count, err
}
