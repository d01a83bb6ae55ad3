package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/MilenaFRocha/Controle-Acoes/internal/api/request"
	"github.com/MilenaFRocha/Controle-Acoes/internal/apperrors"
	"github.com/MilenaFRocha/Controle-Acoes/internal/model"
	"github.com/MilenaFRocha/Controle-Acoes/internal/testutil"
)

func TestOperationService_CreateOperation(t *testing.T) {
	t.Run("creates operation and normalizes ticker", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestOperationService(t, db)

		op, err := svc.CreateOperation(context.Background(), request.CreateOperationRequest{
			Ticker:    " petr4 ",
			Date:      "2024-03-15",
			Type:      model.OperationBuy,
			Quantity:  10,
			Price:     31.50,
			Brokerage: 4.90,
		})

		if err != nil {
			t.Fatalf("CreateOperation() returned unexpected error: %v", err)
		}
		if op.ID == "" {
			t.Error("Expected generated ID")
		}
		if op.Ticker != "PETR4" {
			t.Errorf("Expected ticker PETR4, got %s", op.Ticker)
		}

		ops, err := svc.GetOperations()
		if err != nil {
			t.Fatalf("GetOperations() returned unexpected error: %v", err)
		}
		if len(ops) != 1 {
			t.Fatalf("Expected 1 stored operation, got %d", len(ops))
		}
		if ops[0].Ticker != "PETR4" || ops[0].Quantity != 10 || ops[0].Price != 31.50 {
			t.Errorf("Stored operation does not match request: %+v", ops[0])
		}
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestOperationService(t, db)

		_, err := svc.CreateOperation(context.Background(), request.CreateOperationRequest{
			Ticker:   "PETR4",
			Date:     "15/03/2024",
			Type:     model.OperationBuy,
			Quantity: 10,
			Price:    31.50,
		})

		if err == nil {
			t.Fatal("Expected error for malformed date, got nil")
		}
	})
}

func TestOperationService_GetOperationHistory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestOperationService(t, db)

	testutil.NewOperation().WithTicker("PETR4").WithDate("2024-01-10").Build(t, db)
	testutil.NewOperation().WithTicker("VALE3").WithDate("2024-03-10").Build(t, db)
	testutil.NewOperation().WithTicker("ITUB4").WithDate("2024-02-10").Build(t, db)

	history, err := svc.GetOperationHistory()

	if err != nil {
		t.Fatalf("GetOperationHistory() returned unexpected error: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("Expected 3 operations, got %d", len(history))
	}
	for i, want := range []string{"VALE3", "ITUB4", "PETR4"} {
		if history[i].Ticker != want {
			t.Errorf("Expected %s at position %d, got %s", want, i, history[i].Ticker)
		}
	}
}

func TestOperationService_GetDistinctTickers(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestOperationService(t, db)

	testutil.NewOperation().WithTicker("PETR4").Build(t, db)
	testutil.NewOperation().WithTicker("PETR4").Sell().Build(t, db)
	testutil.NewOperation().WithTicker("VALE3").Build(t, db)

	tickers, err := svc.GetDistinctTickers()

	if err != nil {
		t.Fatalf("GetDistinctTickers() returned unexpected error: %v", err)
	}
	if len(tickers) != 2 {
		t.Fatalf("Expected 2 distinct tickers, got %d: %v", len(tickers), tickers)
	}
}

func TestOperationService_DeleteOperation(t *testing.T) {
	t.Run("deletes existing operation", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestOperationService(t, db)

		op := testutil.NewOperation().Build(t, db)

		if err := svc.DeleteOperation(context.Background(), op.ID); err != nil {
			t.Fatalf("DeleteOperation() returned unexpected error: %v", err)
		}

		ops, err := svc.GetOperations()
		if err != nil {
			t.Fatalf("GetOperations() returned unexpected error: %v", err)
		}
		if len(ops) != 0 {
			t.Errorf("Expected operation to be gone, got %d remaining", len(ops))
		}
	})

	t.Run("returns not found for unknown ID", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestOperationService(t, db)

		err := svc.DeleteOperation(context.Background(), testutil.MakeID())

		if !errors.Is(err, apperrors.ErrOperationNotFound) {
			t.Errorf("Expected ErrOperationNotFound, got %v", err)
		}
	})
}
