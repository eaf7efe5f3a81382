package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"quickcart/internal/domain/model"
	"quickcart/internal/pricing"
	repo "quickcart/internal/repository"
	"quickcart/internal/validator"
)

// CheckoutUsecase は注文サマリーの計算と注文確定を扱う。
// 注文の永続化は外部の注文作成APIに任せ、こちらは1回のPOSTだけ。
type CheckoutUsecase struct {
	cartRepo repo.CartRepository
	catalog  repo.CatalogGateway
	profiles repo.ProfileGateway
	orders   repo.OrderGateway
}

func NewCheckoutUsecase(
	cartRepo repo.CartRepository,
	catalog repo.CatalogGateway,
	profiles repo.ProfileGateway,
	orders repo.OrderGateway,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		cartRepo: cartRepo,
		catalog:  catalog,
		profiles: profiles,
		orders:   orders,
	}
}

type QuoteInput struct {
	State string
}

type QuoteOutput struct {
	Items []CartLineView `json:"items"`
	pricing.Quote
	InterState bool `json:"inter_state"`
}

// GetQuote は候補の配送先州に対する金額内訳を返す。保存はしない。
func (u *CheckoutUsecase) GetQuote(ctx context.Context, userID string, in QuoteInput) (QuoteOutput, error) {
	if userID == "" {
		return QuoteOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	//空白だけの州は未選択として扱う
	state := strings.TrimSpace(in.State)

	items, err := u.cartRepo.Load(ctx, userID)
	if err != nil {
		return QuoteOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	products, err := u.catalog.ListProducts(ctx)
	if err != nil {
		return QuoteOutput{}, NewHTTPError(http.StatusBadGateway, "catalog unavailable")
	}

	profile, err := u.profiles.GetProfile(ctx, userID)
	if err != nil {
		return QuoteOutput{}, NewHTTPError(http.StatusBadGateway, "profile unavailable")
	}

	view := buildCartView(items, products)
	quote := pricing.Compute(items, products, profile.State, state)

	return QuoteOutput{
		Items:      view.Items,
		Quote:      quote,
		InterState: state != "" && validator.IsInterState(profile.State, state),
	}, nil
}

type SubmitOrderInput struct {
	State   string
	Address string
	PIN     string
	Phone   string
}

type SubmitOrderOutput struct {
	OrderID    string `json:"order_id"`
	Message    string `json:"message"`
	GrandTotal int64  `json:"grand_total"`
}

// SubmitOrder は前提チェックをすべて通ったときだけ注文APIを1回呼ぶ。
// 失敗してもカートはそのまま残し、ユーザーがやり直せるようにする。
func (u *CheckoutUsecase) SubmitOrder(ctx context.Context, userID string, in SubmitOrderInput) (SubmitOrderOutput, error) {
	if userID == "" {
		return SubmitOrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	//取引PIN（数字4桁）
	if !validator.IsValidPIN(in.PIN) {
		return SubmitOrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid pin")
	}

	//配送先の州が未選択なら注文できない
	state := strings.TrimSpace(in.State)
	if !validator.HasDeliveryState(state) {
		return SubmitOrderOutput{}, NewHTTPError(http.StatusBadRequest, "delivery state required")
	}

	items, err := u.cartRepo.Load(ctx, userID)
	if err != nil {
		return SubmitOrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	products, err := u.catalog.ListProducts(ctx)
	if err != nil {
		return SubmitOrderOutput{}, NewHTTPError(http.StatusBadGateway, "catalog unavailable")
	}

	//カタログで解決できる行が1つも無ければ注文できない
	lines := pricing.Resolve(items, products)
	if len(lines) == 0 {
		return SubmitOrderOutput{}, NewHTTPError(http.StatusBadRequest, "cart empty")
	}

	//ベンダーは最初の明細から決める
	vendorID := lines[0].Product.VendorID
	if vendorID == "" {
		return SubmitOrderOutput{}, NewHTTPError(http.StatusBadRequest, "vendor unresolved")
	}

	profile, err := u.profiles.GetProfile(ctx, userID)
	if err != nil {
		return SubmitOrderOutput{}, NewHTTPError(http.StatusBadGateway, "profile unavailable")
	}

	//州が違う配送は自由記述の住所が必須。同じ州なら保存済み住所で埋める。
	interState := validator.IsInterState(profile.State, state)
	address := strings.TrimSpace(in.Address)
	if interState && address == "" {
		return SubmitOrderOutput{}, NewHTTPError(http.StatusBadRequest, "delivery address required")
	}
	if address == "" {
		address = profile.AddressLine
	}

	phone := strings.TrimSpace(in.Phone)
	if phone == "" {
		phone = profile.Phone
	}

	quote := pricing.Compute(items, products, profile.State, state)

	orderLines := make([]model.OrderLine, 0, len(lines))
	for _, line := range lines {
		orderLines = append(orderLines, model.OrderLine{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			Quantity:  line.Quantity,
			Price:     line.Product.EffectivePrice(),
			VendorID:  line.Product.VendorID,
		})
	}

	ack, err := u.orders.CreateOrder(ctx, model.OrderRequest{
		UserID:          userID,
		VendorID:        vendorID,
		Products:        orderLines,
		DeliveryAddress: address,
		State:           state,
		Zipcode:         profile.Zipcode,
		ShippingFee:     quote.ShippingFee,
		Tax:             quote.Tax,
		Phone:           phone,
		PIN:             in.PIN,
	})
	if err != nil {
		//APIが返したmessageはそのまま見せる。無ければ一般メッセージ。
		var re *repo.RemoteError
		if errors.As(err, &re) {
			return SubmitOrderOutput{}, NewHTTPError(http.StatusBadGateway, re.Message)
		}
		return SubmitOrderOutput{}, NewHTTPError(http.StatusBadGateway, "order could not be placed")
	}

	return SubmitOrderOutput{
		OrderID:    ack.OrderID,
		Message:    ack.Message,
		GrandTotal: quote.GrandTotal,
	}, nil
}
