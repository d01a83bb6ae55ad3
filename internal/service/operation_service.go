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

// OperationService handles operation-log business logic.
type OperationService struct {
	operationRepo *repository.OperationRepository
}

// NewOperationService creates a new OperationService with the provided repository dependencies.
func NewOperationService(
	operationRepo *repository.OperationRepository,
) *OperationService {
	return &OperationService{
		operationRepo: operationRepo,
	}
}

// GetOperations returns the full log in insertion order, ready for aggregation.
func (s *OperationService) GetOperations() ([]model.Operation, error) {
	return s.operationRepo.GetOperations()
}

// GetOperationHistory returns operations newest first for display.
func (s *OperationService) GetOperationHistory() ([]model.Operation, error) {
	return s.operationRepo.GetOperationHistory()
}

// GetDistinctTickers returns the unique tickers in the log.
func (s *OperationService) GetDistinctTickers() ([]string, error) {
	return s.operationRepo.GetDistinctTickers()
}

// CreateOperation records a new buy or sell. The request is assumed to have
// passed validation; the ticker is normalized to upper case here so the log
// never mixes cases for the same symbol.
func (s *OperationService) CreateOperation(ctx context.Context, req request.CreateOperationRequest) (*model.Operation, error) {
	operationDate, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to parse operation date: %w", err)
	}

	operation := &model.Operation{
		ID:        uuid.New().String(),
		Ticker:    strings.ToUpper(strings.TrimSpace(req.Ticker)),
		Date:      operationDate,
		Type:      req.Type,
		Quantity:  req.Quantity,
		Price:     req.Price,
		Brokerage: req.Brokerage,
		OtherFees: req.OtherFees,
		CreatedAt: time.Now(),
	}

	if err := s.operationRepo.InsertOperation(ctx, operation); err != nil {
		return nil, fmt.Errorf("failed to create operation: %w", err)
	}

	return operation, nil
}

// DeleteOperation removes an operation from the log.
func (s *OperationService) DeleteOperation(ctx context.Context, id string) error {
	return s.operationRepo.DeleteOperation(ctx, id)
}
