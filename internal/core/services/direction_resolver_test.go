package services_test

import (
	"context"
	"testing"

	"github.com/SarrafLink/exchange_locator_app/internal/apperrors"
	"github.com/SarrafLink/exchange_locator_app/internal/core/domain"
	"github.com/SarrafLink/exchange_locator_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CurrencyReaderSvc ---
type MockCurrencySvc struct {
	mock.Mock
}

func (m *MockCurrencySvc) GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencySvc) GetCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencySvc) GetReferenceCurrency(ctx context.Context) (*domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencySvc) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// --- Test Suite ---
type DirectionResolverTestSuite struct {
	suite.Suite
	mockCurrencySvc *MockCurrencySvc
	resolver        *services.DirectionResolver

	reference *domain.Currency
	euro      *domain.Currency
	dollar    *domain.Currency
}

func (suite *DirectionResolverTestSuite) SetupTest() {
	suite.mockCurrencySvc = new(MockCurrencySvc)
	suite.resolver = services.NewDirectionResolver(suite.mockCurrencySvc)

	suite.reference = &domain.Currency{CurrencyID: "cur-mad", Code: "MAD", IsReference: true}
	suite.euro = &domain.Currency{CurrencyID: "cur-eur", Code: "EUR"}
	suite.dollar = &domain.Currency{CurrencyID: "cur-usd", Code: "USD"}
}

// --- Test Cases ---

func (suite *DirectionResolverTestSuite) TestResolve_NoPair_Unconstrained() {
	ctx := context.Background()
	amount := decimal.NewFromInt(1)

	suite.mockCurrencySvc.On("GetReferenceCurrency", ctx).Return(suite.reference, nil).Once()

	pair, err := suite.resolver.Resolve(ctx, "", "", amount)

	suite.Require().NoError(err)
	suite.Require().NotNil(pair)
	suite.Equal(suite.reference.CurrencyID, pair.BaseCurrencyID)
	suite.Empty(pair.TargetCurrencyID)
	suite.Empty(pair.Direction)
	suite.True(amount.Equal(pair.Amount))
	suite.mockCurrencySvc.AssertExpectations(suite.T())
}

func (suite *DirectionResolverTestSuite) TestResolve_BaseIsReference_Sell() {
	ctx := context.Background()
	amount := decimal.NewFromInt(1000)

	suite.mockCurrencySvc.On("GetReferenceCurrency", ctx).Return(suite.reference, nil).Once()
	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "MAD").Return(suite.reference, nil).Once()
	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "EUR").Return(suite.euro, nil).Once()

	pair, err := suite.resolver.Resolve(ctx, "MAD", "EUR", amount)

	suite.Require().NoError(err)
	suite.Equal(suite.reference.CurrencyID, pair.BaseCurrencyID)
	suite.Equal(suite.euro.CurrencyID, pair.TargetCurrencyID)
	suite.Equal(domain.DirectionSell, pair.Direction)
	suite.mockCurrencySvc.AssertNumberOfCalls(suite.T(), "GetCurrencyByCode", 2)
}

func (suite *DirectionResolverTestSuite) TestResolve_TargetIsReference_SwapsToBuy() {
	ctx := context.Background()
	amount := decimal.NewFromInt(100)

	suite.mockCurrencySvc.On("GetReferenceCurrency", ctx).Return(suite.reference, nil).Once()
	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "EUR").Return(suite.euro, nil).Once()
	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "MAD").Return(suite.reference, nil).Once()

	pair, err := suite.resolver.Resolve(ctx, "EUR", "MAD", amount)

	suite.Require().NoError(err)
	// Pair is swapped so the base matches the stored (reference -> foreign) orientation.
	suite.Equal(suite.reference.CurrencyID, pair.BaseCurrencyID)
	suite.Equal(suite.euro.CurrencyID, pair.TargetCurrencyID)
	suite.Equal(domain.DirectionBuy, pair.Direction)
}

func (suite *DirectionResolverTestSuite) TestResolve_MissingBaseDefaultsToReference() {
	ctx := context.Background()

	suite.mockCurrencySvc.On("GetReferenceCurrency", ctx).Return(suite.reference, nil).Once()
	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "EUR").Return(suite.euro, nil).Once()

	pair, err := suite.resolver.Resolve(ctx, "", "EUR", decimal.NewFromInt(1))

	suite.Require().NoError(err)
	suite.Equal(domain.DirectionSell, pair.Direction)
	suite.Equal(suite.euro.CurrencyID, pair.TargetCurrencyID)
}

func (suite *DirectionResolverTestSuite) TestResolve_ReferenceToReference_Unconstrained() {
	ctx := context.Background()

	suite.mockCurrencySvc.On("GetReferenceCurrency", ctx).Return(suite.reference, nil).Once()
	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "MAD").Return(suite.reference, nil).Twice()

	pair, err := suite.resolver.Resolve(ctx, "MAD", "MAD", decimal.NewFromInt(1))

	suite.Require().NoError(err)
	suite.Empty(pair.Direction)
	suite.Empty(pair.TargetCurrencyID)
}

func (suite *DirectionResolverTestSuite) TestResolve_NeitherSideReference_Unsupported() {
	ctx := context.Background()

	suite.mockCurrencySvc.On("GetReferenceCurrency", ctx).Return(suite.reference, nil).Once()
	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "EUR").Return(suite.euro, nil).Once()
	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "USD").Return(suite.dollar, nil).Once()

	pair, err := suite.resolver.Resolve(ctx, "EUR", "USD", decimal.NewFromInt(1))

	suite.Require().Error(err)
	suite.Nil(pair)
	suite.ErrorIs(err, apperrors.ErrUnsupportedCurrencyPair)
}

func (suite *DirectionResolverTestSuite) TestResolve_ResolvesByIDWhenNotACode() {
	ctx := context.Background()

	suite.mockCurrencySvc.On("GetReferenceCurrency", ctx).Return(suite.reference, nil).Once()
	suite.mockCurrencySvc.On("GetCurrencyByID", ctx, "cur-eur").Return(suite.euro, nil).Once()

	pair, err := suite.resolver.Resolve(ctx, "", "cur-eur", decimal.NewFromInt(1))

	suite.Require().NoError(err)
	suite.Equal(domain.DirectionSell, pair.Direction)
	suite.Equal(suite.euro.CurrencyID, pair.TargetCurrencyID)
	suite.mockCurrencySvc.AssertNotCalled(suite.T(), "GetCurrencyByCode")
}

func (suite *DirectionResolverTestSuite) TestResolve_UnknownCode_NotFound() {
	ctx := context.Background()

	suite.mockCurrencySvc.On("GetReferenceCurrency", ctx).Return(suite.reference, nil).Once()
	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "XXX").Return(nil, apperrors.ErrNotFound).Once()

	pair, err := suite.resolver.Resolve(ctx, "XXX", "MAD", decimal.NewFromInt(1))

	suite.Require().Error(err)
	suite.Nil(pair)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *DirectionResolverTestSuite) TestResolve_ReferenceUnconfigured() {
	ctx := context.Background()

	suite.mockCurrencySvc.On("GetReferenceCurrency", ctx).Return(nil, apperrors.ErrReferenceCurrencyUnconfigured).Once()

	pair, err := suite.resolver.Resolve(ctx, "EUR", "", decimal.NewFromInt(1))

	suite.Require().Error(err)
	suite.Nil(pair)
	suite.ErrorIs(err, apperrors.ErrReferenceCurrencyUnconfigured)
	suite.mockCurrencySvc.AssertNotCalled(suite.T(), "GetCurrencyByCode")
}

// --- Run Suite ---
func TestDirectionResolver(t *testing.T) {
	suite.Run(t, new(DirectionResolverTestSuite))
}
