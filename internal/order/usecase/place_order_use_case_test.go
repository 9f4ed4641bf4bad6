package usecase

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"comngon/internal/dto"
	apperrors "comngon/internal/errors"
)

// Mock implementations

type mockPlacementService struct {
	PlaceOrderFunc func(ctx context.Context, userID uint, req dto.PlaceOrderRequest) (uint, error)
}

func (m *mockPlacementService) PlaceOrder(ctx context.Context, userID uint, req dto.PlaceOrderRequest) (uint, error) {
	return m.PlaceOrderFunc(ctx, userID, req)
}

func validRequest() dto.PlaceOrderRequest {
	return dto.PlaceOrderRequest{
		Name:    "An",
		Phone:   "0901234567",
		Address: "12 Nguyen Trai",
		Items: []dto.PlaceOrderItem{
			{ProductID: 1, Name: "Rice", Price: 5, Quantity: 2},
		},
		Total: 10,
	}
}

// Tests

func TestPlaceOrder_Valid(t *testing.T) {
	ctx := context.Background()

	svc := &mockPlacementService{
		PlaceOrderFunc: func(ctx context.Context, userID uint, req dto.PlaceOrderRequest) (uint, error) {
			if userID != 42 {
				t.Errorf("expected userID 42, got %d", userID)
			}
			return 7, nil
		},
	}

	uc := NewPlaceOrderUseCase(svc, zap.NewNop())

	orderID, err := uc.PlaceOrder(ctx, 42, validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if orderID != 7 {
		t.Errorf("expected order id 7, got %d", orderID)
	}
}

func TestPlaceOrder_ValidationFailsBeforeService(t *testing.T) {
	ctx := context.Background()

	svc := &mockPlacementService{
		PlaceOrderFunc: func(ctx context.Context, userID uint, req dto.PlaceOrderRequest) (uint, error) {
			t.Fatal("placement service must not be called for an invalid payload")
			return 0, nil
		},
	}

	uc := NewPlaceOrderUseCase(svc, zap.NewNop())

	cases := []struct {
		name   string
		mutate func(*dto.PlaceOrderRequest)
		field  string
	}{
		{"missing name", func(r *dto.PlaceOrderRequest) { r.Name = "" }, "name"},
		{"missing phone", func(r *dto.PlaceOrderRequest) { r.Phone = "" }, "phone"},
		{"missing address", func(r *dto.PlaceOrderRequest) { r.Address = "" }, "address"},
		{"empty items", func(r *dto.PlaceOrderRequest) { r.Items = nil }, "items"},
		{"zero quantity", func(r *dto.PlaceOrderRequest) { r.Items[0].Quantity = 0 }, "items[0].quantity"},
		{"negative price", func(r *dto.PlaceOrderRequest) { r.Items[0].Price = -1 }, "items[0].price"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)

			_, err := uc.PlaceOrder(ctx, 42, req)
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			ve, ok := apperrors.IsValidationError(err)
			if !ok {
				t.Fatalf("expected ValidationError, got %T", err)
			}

			found := false
			for _, d := range ve.Details {
				if d.Field == tc.field {
					found = true
				}
			}
			if !found {
				t.Errorf("expected a detail for field %q, got %+v", tc.field, ve.Details)
			}
		})
	}
}

func TestPlaceOrder_AllFieldsMissingReportsAllDetails(t *testing.T) {
	ctx := context.Background()

	svc := &mockPlacementService{
		PlaceOrderFunc: func(ctx context.Context, userID uint, req dto.PlaceOrderRequest) (uint, error) {
			t.Fatal("placement service must not be called")
			return 0, nil
		},
	}

	uc := NewPlaceOrderUseCase(svc, zap.NewNop())

	_, err := uc.PlaceOrder(ctx, 42, dto.PlaceOrderRequest{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	ve, ok := apperrors.IsValidationError(err)
	if !ok {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if len(ve.Details) != 4 {
		t.Errorf("expected 4 details (name, phone, address, items), got %d", len(ve.Details))
	}
}

func TestPlaceOrder_NoteIsOptional(t *testing.T) {
	ctx := context.Background()

	var seenNote string
	svc := &mockPlacementService{
		PlaceOrderFunc: func(ctx context.Context, userID uint, req dto.PlaceOrderRequest) (uint, error) {
			seenNote = req.Note
			return 7, nil
		},
	}

	uc := NewPlaceOrderUseCase(svc, zap.NewNop())

	req := validRequest()
	req.Note = ""
	if _, err := uc.PlaceOrder(ctx, 42, req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seenNote != "" {
		t.Errorf("expected empty note, got %q", seenNote)
	}
}
