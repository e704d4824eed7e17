package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"safari/internal/models/db_models"
	"safari/internal/models/request_models"
	"safari/internal/repositories"
	"safari/pkg/utils"
)

type TeamMemberServiceInterface interface {
	ListTeamMembers(ctx context.Context) ([]db_models.TeamMember, error)
	CreateTeamMember(ctx context.Context, req request_models.CreateTeamMemberRequest) (*db_models.TeamMember, error)
}

type TeamMemberService struct {
	teamRepo repositories.TeamMemberRepository
	log      *zap.Logger
}

func NewTeamMemberService(teamRepo repositories.TeamMemberRepository, log *zap.Logger) TeamMemberServiceInterface {
	return &TeamMemberService{teamRepo: teamRepo, log: log}
}

func (s *TeamMemberService) ListTeamMembers(ctx context.Context) ([]db_models.TeamMember, error) {
	members, err := s.teamRepo.List(ctx)
	if err != nil {
		s.log.Error("list team members", zap.Error(err))
		return nil, fmt.Errorf("%w: list team members", utils.ErrDatabaseError)
	}
	return members, nil
}

func (s *TeamMemberService) CreateTeamMember(ctx context.Context, req request_models.CreateTeamMemberRequest) (*db_models.TeamMember, error) {
	member := NewTeamMemberFromRequest(req)
	if err := s.teamRepo.Create(ctx, member); err != nil {
		s.log.Error("create team member", zap.Error(err))
		return nil, fmt.Errorf("%w: create team member", utils.ErrDatabaseError)
	}
	return member, nil
}

func NewTeamMemberFromRequest(req request_models.CreateTeamMemberRequest) *db_models.TeamMember {
	return &db_models.TeamMember{
		Name:              strings.TrimSpace(req.Name),
		Role:              req.Role,
		Bio:               req.Bio,
		ImageURL:          req.ImageURL,
		Specialty:         req.Specialty,
		YearsOfExperience: intOrDefault(req.YearsOfExperience, 0),
	}
}
