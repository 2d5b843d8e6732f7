package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type GenVariantRepoMock struct{ mock.Mock }

func (m *GenVariantRepoMock) FindByID(ctx context.Context, variantID string) (model.ProductVariant, error) {
	args := m.Called(ctx, variantID)
	v, _ := args.Get(0).(model.ProductVariant)
	return v, args.Error(1)
}

func (m *GenVariantRepoMock) ListPrices(ctx context.Context, variantID string) ([]model.MoneyAmount, error) {
	args := m.Called(ctx, variantID)
	prices, _ := args.Get(0).([]model.MoneyAmount)
	return prices, args.Error(1)
}

// 連番ID（テストで値を追いやすくする）
type seqIDGen struct{ n int }

func (g *seqIDGen) NewID() string {
	g.n++
	return fmt.Sprintf("id_%d", g.n)
}

func strPtr(s string) *string { return &s }

func TestLineItemGenerator_Generate_InvalidQuantity(t *testing.T) {
	vRepo := new(GenVariantRepoMock)
	gen := usecase.NewLineItemGenerator(&seqIDGen{})

	_, err := gen.Generate(context.Background(), vRepo, usecase.GenerateLineItemInput{
		VariantID: "v1",
		Region:    model.Region{ID: "r1", CurrencyCode: "usd"},
		Quantity:  0,
	})
	assertErrContains(t, err, "invalid quantity")

	//数量チェックはDBに触る前
	vRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestLineItemGenerator_Generate_VariantNotFound(t *testing.T) {
	vRepo := new(GenVariantRepoMock)
	gen := usecase.NewLineItemGenerator(&seqIDGen{})

	vRepo.On("FindByID", mock.Anything, "missing").Return(model.ProductVariant{}, repo.ErrNotFound)

	_, err := gen.Generate(context.Background(), vRepo, usecase.GenerateLineItemInput{
		VariantID: "missing",
		Region:    model.Region{ID: "r1", CurrencyCode: "usd"},
		Quantity:  1,
	})
	assertErrContains(t, err, "variant not found")
}

func TestLineItemGenerator_Generate_RegionPriceWins(t *testing.T) {
	ctx := context.Background()

	vRepo := new(GenVariantRepoMock)
	gen := usecase.NewLineItemGenerator(&seqIDGen{})

	vRepo.On("FindByID", mock.Anything, "v1").Return(model.ProductVariant{
		ID:        "v1",
		ProductID: "p1",
		Title:     "Coffee Mug",
	}, nil)
	vRepo.On("ListPrices", mock.Anything, "v1").Return([]model.MoneyAmount{
		{ID: "ma1", VariantID: "v1", RegionID: nil, CurrencyCode: "usd", Amount: 1200},
		{ID: "ma2", VariantID: "v1", RegionID: strPtr("r1"), CurrencyCode: "usd", Amount: 1000},
	}, nil)

	li, err := gen.Generate(ctx, vRepo, usecase.GenerateLineItemInput{
		VariantID: "v1",
		Region:    model.Region{ID: "r1", CurrencyCode: "usd"},
		Quantity:  2,
	})
	assert.NoError(t, err)

	//地域限定価格が通貨単位の価格より優先される
	assert.Equal(t, int64(1000), li.UnitPrice)
	assert.Equal(t, int64(2), li.Quantity)
	assert.Equal(t, "Coffee Mug", li.Title)
	assert.Equal(t, "p1", li.ProductID)
	assert.Equal(t, "id_1", li.ID)
}

func TestLineItemGenerator_Generate_CurrencyFallback(t *testing.T) {
	ctx := context.Background()

	vRepo := new(GenVariantRepoMock)
	gen := usecase.NewLineItemGenerator(&seqIDGen{})

	vRepo.On("FindByID", mock.Anything, "v1").Return(model.ProductVariant{ID: "v1", ProductID: "p1", Title: "Mug"}, nil)
	vRepo.On("ListPrices", mock.Anything, "v1").Return([]model.MoneyAmount{
		{ID: "ma1", VariantID: "v1", RegionID: strPtr("r-other"), CurrencyCode: "eur", Amount: 900},
		{ID: "ma2", VariantID: "v1", RegionID: nil, CurrencyCode: "USD", Amount: 1200},
	}, nil)

	li, err := gen.Generate(ctx, vRepo, usecase.GenerateLineItemInput{
		VariantID: "v1",
		Region:    model.Region{ID: "r1", CurrencyCode: "usd"},
		Quantity:  1,
	})
	assert.NoError(t, err)

	//通貨コードは大文字小文字を区別しない
	assert.Equal(t, int64(1200), li.UnitPrice)
}

func TestLineItemGenerator_Generate_NoPriceForRegion(t *testing.T) {
	ctx := context.Background()

	vRepo := new(GenVariantRepoMock)
	gen := usecase.NewLineItemGenerator(&seqIDGen{})

	vRepo.On("FindByID", mock.Anything, "v1").Return(model.ProductVariant{ID: "v1", ProductID: "p1", Title: "Mug"}, nil)
	vRepo.On("ListPrices", mock.Anything, "v1").Return([]model.MoneyAmount{
		{ID: "ma1", VariantID: "v1", RegionID: strPtr("r-other"), CurrencyCode: "eur", Amount: 900},
	}, nil)

	_, err := gen.Generate(ctx, vRepo, usecase.GenerateLineItemInput{
		VariantID: "v1",
		Region:    model.Region{ID: "r1", CurrencyCode: "usd"},
		Quantity:  1,
	})
	assertErrContains(t, err, "not available in region")
}
