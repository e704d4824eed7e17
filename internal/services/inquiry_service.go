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

type InquiryServiceInterface interface {
	CreateInquiry(ctx context.Context, req request_models.CreateInquiryRequest) (*db_models.Inquiry, error)
	ListInquiries(ctx context.Context) ([]db_models.Inquiry, error)
}

type InquiryService struct {
	inquiryRepo repositories.InquiryRepository
	log         *zap.Logger
}

func NewInquiryService(inquiryRepo repositories.InquiryRepository, log *zap.Logger) InquiryServiceInterface {
	return &InquiryService{inquiryRepo: inquiryRepo, log: log}
}

func (s *InquiryService) CreateInquiry(ctx context.Context, req request_models.CreateInquiryRequest) (*db_models.Inquiry, error) {
	inquiry := &db_models.Inquiry{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Type:    req.Type,
		Message: req.Message,
	}
	if err := s.inquiryRepo.Create(ctx, inquiry); err != nil {
		s.log.Error("create inquiry", zap.Error(err))
		return nil, fmt.Errorf("%w: create inquiry", utils.ErrDatabaseError)
	}
	return inquiry, nil
}

func (s *InquiryService) ListInquiries(ctx context.Context) ([]db_models.Inquiry, error) {
	inquiries, err := s.inquiryRepo.List(ctx)
	if err != nil {
		s.log.Error("list inquiries", zap.Error(err))
		return nil, fmt.Errorf("%w: list inquiries", utils.ErrDatabaseError)
	}
	return inquiries, nil
}
