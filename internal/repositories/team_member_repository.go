package repositories

import (
	"context"

	"gorm.io/gorm"
	"safari/internal/models/db_models"
)

type TeamMemberRepository interface {
	Create(ctx context.Context, member *db_models.TeamMember) error
	List(ctx context.Context) ([]db_models.TeamMember, error)
}

type teamMemberRepository struct {
	db *gorm.DB
}

func NewTeamMemberRepository(db *gorm.DB) TeamMemberRepository {
	return &teamMemberRepository{db: db}
}

func (r *teamMemberRepository) Create(ctx context.Context, member *db_models.TeamMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *teamMemberRepository) List(ctx context.Context) ([]db_models.TeamMember, error) {
	members := []db_models.TeamMember{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}
