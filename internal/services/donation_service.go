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

type DonationServiceInterface interface {
	CreateDonation(ctx context.Context, req request_models.CreateDonationRequest) (*db_models.Donation, error)
	SendDonationInquiry(ctx context.Context, req request_models.DonationInquiryRequest) (MailStatus, error)
	ListDonations(ctx context.Context) ([]db_models.Donation, error)
	DonationTotals(ctx context.Context) ([]repositories.DonationTotal, error)
}

type DonationService struct {
	donationRepo repositories.DonationRepository
	mail         IMailService
	notifier     *NotificationDispatcher
	log          *zap.Logger
}

func NewDonationService(
	donationRepo repositories.DonationRepository,
	mail IMailService,
	notifier *NotificationDispatcher,
	log *zap.Logger,
) DonationServiceInterface {
	return &DonationService{donationRepo: donationRepo, mail: mail, notifier: notifier, log: log}
}

// CreateDonation records the pledge. The Stripe ids stay empty here; the
// payment itself goes through the intent and subscription endpoints.
func (s *DonationService) CreateDonation(ctx context.Context, req request_models.CreateDonationRequest) (*db_models.Donation, error) {
	donation := &db_models.Donation{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.TrimSpace(req.Email),
		Amount:       req.Amount,
		DonationType: req.DonationType,
		ProjectID:    req.ProjectID,
	}
	if err := s.donationRepo.Create(ctx, donation); err != nil {
		s.log.Error("create donation", zap.Error(err))
		return nil, fmt.Errorf("%w: create donation", utils.ErrDatabaseError)
	}

	saved := *donation
	s.notifier.Dispatch(ctx, "donation", func(ctx context.Context) (MailStatus, error) {
		return s.mail.NotifyDonation(ctx, saved)
	})
	return donation, nil
}

// SendDonationInquiry is mail only: nothing is stored, so a delivery
// failure is the request's failure.
func (s *DonationService) SendDonationInquiry(ctx context.Context, req request_models.DonationInquiryRequest) (MailStatus, error) {
	status, err := s.mail.SendDonationInquiry(ctx, req)
	if err != nil {
		s.log.Error("send donation inquiry", zap.Error(err))
		return "", err
	}
	return status, nil
}

func (s *DonationService) ListDonations(ctx context.Context) ([]db_models.Donation, error) {
	donations, err := s.donationRepo.List(ctx)
	if err != nil {
		s.log.Error("list donations", zap.Error(err))
		return nil, fmt.Errorf("%w: list donations", utils.ErrDatabaseError)
	}
	return donations, nil
}

func (s *DonationService) DonationTotals(ctx context.Context) ([]repositories.DonationTotal, error) {
	totals, err := s.donationRepo.TotalsByType(ctx)
	if err != nil {
		s.log.Error("donation totals", zap.Error(err))
		return nil, fmt.Errorf("%w: donation totals", utils.ErrDatabaseError)
	}
	return totals, nil
}
