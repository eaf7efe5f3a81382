package usecase_test

import (
	"context"
	"testing"

	"quickcart/internal/domain/model"
	repo "quickcart/internal/repository"
	"quickcart/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks（衝突回避の命名）
// =====================

type CheckoutCartRepoMock struct{ mock.Mock }

func (m *CheckoutCartRepoMock) Load(ctx context.Context, userID string) (model.CartItems, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).(model.CartItems)
	return items, args.Error(1)
}

func (m *CheckoutCartRepoMock) Save(ctx context.Context, userID string, items model.CartItems) error {
	panic("not used in CheckoutUsecase tests")
}

type CheckoutCatalogMock struct{ mock.Mock }

func (m *CheckoutCatalogMock) ListProducts(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]model.Product)
	return products, args.Error(1)
}

func (m *CheckoutCatalogMock) FindProduct(ctx context.Context, productID string) (model.Product, error) {
	panic("not used in CheckoutUsecase tests")
}

type CheckoutProfileMock struct{ mock.Mock }

func (m *CheckoutProfileMock) GetProfile(ctx context.Context, userID string) (model.BuyerProfile, error) {
	args := m.Called(ctx, userID)
	profile, _ := args.Get(0).(model.BuyerProfile)
	return profile, args.Error(1)
}

type CheckoutOrderMock struct{ mock.Mock }

func (m *CheckoutOrderMock) CreateOrder(ctx context.Context, orderReq model.OrderRequest) (model.OrderAck, error) {
	args := m.Called(ctx, orderReq)
	ack, _ := args.Get(0).(model.OrderAck)
	return ack, args.Error(1)
}

func checkoutInt64p(v int64) *int64 { return &v }

func checkoutTestCatalog() []model.Product {
	return []model.Product{
		{ID: "A", VendorID: "v1", Name: "Headset", Price: 1000, OfferPrice: checkoutInt64p(800), Stock: 10},
		{ID: "B", VendorID: "v1", Name: "Mouse", Price: 500, Stock: 10},
	}
}

func checkoutTestProfile() model.BuyerProfile {
	return model.BuyerProfile{
		UserID:      "u1",
		Name:        "Ada",
		Phone:       "0800-000-0000",
		State:       "Lagos",
		Zipcode:     "100001",
		AddressLine: "12 Marina Rd",
	}
}

func newCheckoutMocks() (*CheckoutCartRepoMock, *CheckoutCatalogMock, *CheckoutProfileMock, *CheckoutOrderMock, *usecase.CheckoutUsecase) {
	cartRepo := new(CheckoutCartRepoMock)
	catalog := new(CheckoutCatalogMock)
	profiles := new(CheckoutProfileMock)
	orders := new(CheckoutOrderMock)
	uc := usecase.NewCheckoutUsecase(cartRepo, catalog, profiles, orders)
	return cartRepo, catalog, profiles, orders, uc
}

// =====================
// GetQuote
// =====================

func TestCheckoutUsecase_GetQuote_IntraState(t *testing.T) {
	cartRepo, catalog, profiles, _, uc := newCheckoutMocks()

	cartRepo.On("Load", mock.Anything, "u1").Return(model.CartItems{"A": 2, "B": 1}, nil)
	catalog.On("ListProducts", mock.Anything).Return(checkoutTestCatalog(), nil)
	profiles.On("GetProfile", mock.Anything, "u1").Return(checkoutTestProfile(), nil)

	out, err := uc.GetQuote(context.Background(), "u1", usecase.QuoteInput{State: "Lagos"})
	assert.NoError(t, err)
	assert.False(t, out.InterState)
	assert.Equal(t, int64(2100), out.ItemsTotal)
	assert.Equal(t, int64(5), out.ShippingFeePercent)
	assert.Equal(t, int64(105), out.ShippingFee)
	assert.Equal(t, int64(42), out.Tax)
	assert.Equal(t, int64(2247), out.GrandTotal)
}

func TestCheckoutUsecase_GetQuote_InterState(t *testing.T) {
	cartRepo, catalog, profiles, _, uc := newCheckoutMocks()

	cartRepo.On("Load", mock.Anything, "u1").Return(model.CartItems{"A": 2, "B": 1}, nil)
	catalog.On("ListProducts", mock.Anything).Return(checkoutTestCatalog(), nil)
	profiles.On("GetProfile", mock.Anything, "u1").Return(checkoutTestProfile(), nil)

	out, err := uc.GetQuote(context.Background(), "u1", usecase.QuoteInput{State: "Kano"})
	assert.NoError(t, err)
	assert.True(t, out.InterState)
	assert.Equal(t, int64(10), out.ShippingFeePercent)
	assert.Equal(t, int64(210), out.ShippingFee)
	assert.Equal(t, int64(42), out.Tax)
	assert.Equal(t, int64(2352), out.GrandTotal)
}

// =====================
// SubmitOrder（前提チェック）
// =====================

// PINが数字4桁でなければ注文APIは呼ばれない
func TestCheckoutUsecase_SubmitOrder_InvalidPIN(t *testing.T) {
	_, _, _, orders, uc := newCheckoutMocks()

	for _, pin := range []string{"", "12a4", "123", "12345"} {
		_, err := uc.SubmitOrder(context.Background(), "u1", usecase.SubmitOrderInput{
			State: "Lagos",
			PIN:   pin,
		})
		assertErrContains(t, err, "invalid pin")
	}

	orders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

// 配送先州が未選択ならローカルで弾き、ネットワーク呼び出しをしない
func TestCheckoutUsecase_SubmitOrder_NoDeliveryState(t *testing.T) {
	_, _, _, orders, uc := newCheckoutMocks()

	_, err := uc.SubmitOrder(context.Background(), "u1", usecase.SubmitOrderInput{
		State: "   ",
		PIN:   "1234",
	})
	assertErrContains(t, err, "delivery state required")

	orders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

// 州をまたぐ配送は自由記述の住所が必須
func TestCheckoutUsecase_SubmitOrder_InterStateNeedsAddress(t *testing.T) {
	cartRepo, catalog, profiles, orders, uc := newCheckoutMocks()

	cartRepo.On("Load", mock.Anything, "u1").Return(model.CartItems{"A": 1}, nil)
	catalog.On("ListProducts", mock.Anything).Return(checkoutTestCatalog(), nil)
	profiles.On("GetProfile", mock.Anything, "u1").Return(checkoutTestProfile(), nil)

	_, err := uc.SubmitOrder(context.Background(), "u1", usecase.SubmitOrderInput{
		State: "Kano",
		PIN:   "1234",
	})
	assertErrContains(t, err, "delivery address required")

	orders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

// カタログで解決できる行が無ければ注文できない
func TestCheckoutUsecase_SubmitOrder_EmptyCart(t *testing.T) {
	cartRepo, catalog, _, orders, uc := newCheckoutMocks()

	cartRepo.On("Load", mock.Anything, "u1").Return(model.CartItems{"ghost": 2}, nil)
	catalog.On("ListProducts", mock.Anything).Return(checkoutTestCatalog(), nil)

	_, err := uc.SubmitOrder(context.Background(), "u1", usecase.SubmitOrderInput{
		State: "Lagos",
		PIN:   "1234",
	})
	assertErrContains(t, err, "cart empty")

	orders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestCheckoutUsecase_SubmitOrder_VendorUnresolved(t *testing.T) {
	cartRepo, catalog, _, orders, uc := newCheckoutMocks()

	noVendor := []model.Product{{ID: "A", Name: "Headset", Price: 1000, Stock: 10}}
	cartRepo.On("Load", mock.Anything, "u1").Return(model.CartItems{"A": 1}, nil)
	catalog.On("ListProducts", mock.Anything).Return(noVendor, nil)

	_, err := uc.SubmitOrder(context.Background(), "u1", usecase.SubmitOrderInput{
		State: "Lagos",
		PIN:   "1234",
	})
	assertErrContains(t, err, "vendor unresolved")

	orders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

// =====================
// SubmitOrder（送信）
// =====================

// 同じ州：保存済み住所で埋まり、5%の送料でペイロードが組まれる
func TestCheckoutUsecase_SubmitOrder_IntraStateSuccess(t *testing.T) {
	cartRepo, catalog, profiles, orders, uc := newCheckoutMocks()

	cartRepo.On("Load", mock.Anything, "u1").Return(model.CartItems{"A": 2, "B": 1}, nil)
	catalog.On("ListProducts", mock.Anything).Return(checkoutTestCatalog(), nil)
	profiles.On("GetProfile", mock.Anything, "u1").Return(checkoutTestProfile(), nil)

	var sent model.OrderRequest
	orders.On("CreateOrder", mock.Anything, mock.AnythingOfType("model.OrderRequest")).
		Run(func(args mock.Arguments) {
			sent = args.Get(1).(model.OrderRequest)
		}).
		Return(model.OrderAck{OrderID: "o1", Message: "order placed"}, nil)

	out, err := uc.SubmitOrder(context.Background(), "u1", usecase.SubmitOrderInput{
		State: "Lagos",
		PIN:   "1234",
	})
	assert.NoError(t, err)
	assert.Equal(t, "o1", out.OrderID)
	assert.Equal(t, int64(2247), out.GrandTotal)

	assert.Equal(t, "u1", sent.UserID)
	assert.Equal(t, "v1", sent.VendorID)
	assert.Equal(t, "12 Marina Rd", sent.DeliveryAddress)
	assert.Equal(t, "Lagos", sent.State)
	assert.Equal(t, "100001", sent.Zipcode)
	assert.Equal(t, int64(105), sent.ShippingFee)
	assert.Equal(t, int64(42), sent.Tax)
	assert.Equal(t, "0800-000-0000", sent.Phone)
	assert.Equal(t, "1234", sent.PIN)

	assert.Len(t, sent.Products, 2)
	assert.Equal(t, model.OrderLine{ProductID: "A", Name: "Headset", Quantity: 2, Price: 800, VendorID: "v1"}, sent.Products[0])
	assert.Equal(t, model.OrderLine{ProductID: "B", Name: "Mouse", Quantity: 1, Price: 500, VendorID: "v1"}, sent.Products[1])
}

// 州をまたぐ場合は入力された住所と10%の送料
func TestCheckoutUsecase_SubmitOrder_InterStateSuccess(t *testing.T) {
	cartRepo, catalog, profiles, orders, uc := newCheckoutMocks()

	cartRepo.On("Load", mock.Anything, "u1").Return(model.CartItems{"A": 2, "B": 1}, nil)
	catalog.On("ListProducts", mock.Anything).Return(checkoutTestCatalog(), nil)
	profiles.On("GetProfile", mock.Anything, "u1").Return(checkoutTestProfile(), nil)

	var sent model.OrderRequest
	orders.On("CreateOrder", mock.Anything, mock.AnythingOfType("model.OrderRequest")).
		Run(func(args mock.Arguments) {
			sent = args.Get(1).(model.OrderRequest)
		}).
		Return(model.OrderAck{OrderID: "o2"}, nil)

	out, err := uc.SubmitOrder(context.Background(), "u1", usecase.SubmitOrderInput{
		State:   "Kano",
		Address: "4 Zoo Rd, Kano",
		PIN:     "1234",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(2352), out.GrandTotal)

	assert.Equal(t, "Kano", sent.State)
	assert.Equal(t, "4 Zoo Rd, Kano", sent.DeliveryAddress)
	assert.Equal(t, int64(210), sent.ShippingFee)
	assert.Equal(t, int64(42), sent.Tax)
}

// 注文APIが返したmessageはそのままユーザーに見せる
func TestCheckoutUsecase_SubmitOrder_RemoteMessagePassedThrough(t *testing.T) {
	cartRepo, catalog, profiles, orders, uc := newCheckoutMocks()

	cartRepo.On("Load", mock.Anything, "u1").Return(model.CartItems{"A": 1}, nil)
	catalog.On("ListProducts", mock.Anything).Return(checkoutTestCatalog(), nil)
	profiles.On("GetProfile", mock.Anything, "u1").Return(checkoutTestProfile(), nil)

	orders.On("CreateOrder", mock.Anything, mock.Anything).
		Return(model.OrderAck{}, &repo.RemoteError{Status: 400, Message: "insufficient wallet balance"})

	_, err := uc.SubmitOrder(context.Background(), "u1", usecase.SubmitOrderInput{
		State: "Lagos",
		PIN:   "1234",
	})
	assertErrContains(t, err, "insufficient wallet balance")
}
