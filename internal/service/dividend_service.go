package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MilenaFRocha/Controle-Acoes/internal/api/request"
	"github.com/MilenaFRocha/Controle-Acoes/internal/model"
	"github.com/MilenaFRocha/Controle-Acoes/internal/repository"
)

// DividendService handles payout business logic.
type DividendService struct {
	dividendRepo *repository.DividendRepository
}

// NewDividendService creates a new DividendService with the provided repository dependencies.
func NewDividendService(
	dividendRepo *repository.DividendRepository,
) *DividendService {
	return &DividendService{
		dividendRepo: dividendRepo,
	}
}

// GetDividends returns all payouts newest first.
func (s *DividendService) GetDividends() ([]model.Dividend, error) {
	return s.dividendRepo.GetDividends()
}

// GetDividendTotal returns the sum of all recorded payouts.
func (s *DividendService) GetDividendTotal() (float64, error) {
	return s.dividendRepo.GetDividendTotal()
}

// CreateDividend records a new payout. The ticker is normalized to upper case.
func (s *DividendService) CreateDividend(ctx context.Context, req request.CreateDividendRequest) (*model.Dividend, error) {
	dividendDate, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dividend date: %w", err)
	}

	dividend := &model.Dividend{
		ID:        uuid.New().String(),
		Ticker:    strings.ToUpper(strings.TrimSpace(req.Ticker)),
		Date:      dividendDate,
		Type:      req.Type,
		Value:     req.Value,
		CreatedAt: time.Now(),
	}

	if err := s.dividendRepo.InsertDividend(ctx, dividend); err != nil {
		return nil, fmt.Errorf("failed to create dividend: %w", err)
	}

	return dividend, nil
}

// DeleteDividend removes a payout record.
func (s *DividendService) DeleteDividend(ctx context.Context, id string) error {
	return s.dividendRepo.DeleteDividend(ctx, id)
}
