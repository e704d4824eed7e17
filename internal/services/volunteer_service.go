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

type VolunteerServiceInterface interface {
	ListActiveVolunteers(ctx context.Context) ([]db_models.Volunteer, error)
	CreateVolunteer(ctx context.Context, req request_models.CreateVolunteerRequest) (*db_models.Volunteer, error)
}

type VolunteerService struct {
	volunteerRepo repositories.VolunteerRepository
	mail          IMailService
	notifier      *NotificationDispatcher
	log           *zap.Logger
}

func NewVolunteerService(
	volunteerRepo repositories.VolunteerRepository,
	mail IMailService,
	notifier *NotificationDispatcher,
	log *zap.Logger,
) VolunteerServiceInterface {
	return &VolunteerService{volunteerRepo: volunteerRepo, mail: mail, notifier: notifier, log: log}
}

func (s *VolunteerService) ListActiveVolunteers(ctx context.Context) ([]db_models.Volunteer, error) {
	volunteers, err := s.volunteerRepo.ListActive(ctx)
	if err != nil {
		s.log.Error("list volunteers", zap.Error(err))
		return nil, fmt.Errorf("%w: list volunteers", utils.ErrDatabaseError)
	}
	return volunteers, nil
}

func (s *VolunteerService) CreateVolunteer(ctx context.Context, req request_models.CreateVolunteerRequest) (*db_models.Volunteer, error) {
	status := req.Status
	if status == "" {
		status = db_models.VolunteerStatusActive
	}
	volunteer := &db_models.Volunteer{
		Name:         strings.TrimSpace(req.Name),
		Role:         req.Role,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		Availability: req.Availability,
		Skills:       db_models.StringList(nonNilStrings(req.Skills)),
		Status:       status,
	}
	if err := s.volunteerRepo.Create(ctx, volunteer); err != nil {
		s.log.Error("create volunteer", zap.Error(err))
		return nil, fmt.Errorf("%w: create volunteer", utils.ErrDatabaseError)
	}

	saved := *volunteer
	s.notifier.Dispatch(ctx, "volunteer", func(ctx context.Context) (MailStatus, error) {
		return s.mail.NotifyVolunteer(ctx, saved)
	})
	return volunteer, nil
}
