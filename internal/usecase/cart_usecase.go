package usecase

import (
	"context"
	"net/http"
	"sort"

	"quickcart/internal/domain/model"
	"quickcart/internal/pricing"
	repo "quickcart/internal/repository"
)

// CartUsecase は購入者ごとのカート（商品ID→数量）を扱う。
// カタログは外部APIなので、表示のたびに突き合わせて解決する。
type CartUsecase struct {
	cartRepo repo.CartRepository
	catalog  repo.CatalogGateway
}

func NewCartUsecase(cartRepo repo.CartRepository, catalog repo.CatalogGateway) *CartUsecase {
	return &CartUsecase{
		cartRepo: cartRepo,
		catalog:  catalog,
	}
}

type CartLineView struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
	LineTotal int64  `json:"line_total"`
	ImageURL  string `json:"image_url,omitempty"`
}

type CartView struct {
	Items  []CartLineView `json:"items"`
	Count  int64          `json:"count"`
	Amount int64          `json:"amount"`

	// 読み込み時にカタログから消えていて刈り取った商品ID
	RemovedProductIDs []string `json:"removed_product_ids,omitempty"`
}

// GetCart はカートを取得する。カタログで解決できない行は
// 保存済みマッピングからも刈り取り、削除したIDを通知用に返す。
func (u *CartUsecase) GetCart(ctx context.Context, userID string) (CartView, error) {
	if userID == "" {
		return CartView{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	items, err := u.cartRepo.Load(ctx, userID)
	if err != nil {
		return CartView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	products, err := u.catalog.ListProducts(ctx)
	if err != nil {
		return CartView{}, NewHTTPError(http.StatusBadGateway, "catalog unavailable")
	}

	removed := pruneStaleLines(items, products)
	if len(removed) > 0 {
		if err := u.cartRepo.Save(ctx, userID, items); err != nil {
			return CartView{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
	}

	view := buildCartView(items, products)
	view.RemovedProductIDs = removed
	return view, nil
}

// AddToCart は数量を1増やす（無ければ1で作成）。
// 在庫はサーバー側で検証し、超える追加は拒否する。
func (u *CartUsecase) AddToCart(ctx context.Context, userID string, productID string) (CartView, error) {
	if userID == "" {
		return CartView{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID == "" {
		return CartView{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	products, err := u.catalog.ListProducts(ctx)
	if err != nil {
		return CartView{}, NewHTTPError(http.StatusBadGateway, "catalog unavailable")
	}

	product, ok := findProduct(products, productID)
	if !ok {
		return CartView{}, NewHTTPError(http.StatusBadRequest, "invalid product")
	}

	items, err := u.cartRepo.Load(ctx, userID)
	if err != nil {
		return CartView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//在庫チェック
	if items[productID]+1 > product.Stock {
		return CartView{}, NewHTTPError(http.StatusBadRequest, "stock exceeded")
	}

	items.Add(productID)

	if err := u.cartRepo.Save(ctx, userID, items); err != nil {
		return CartView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return buildCartView(items, products), nil
}

// UpdateQuantity は数量を直接セットする。0はその行の削除を意味する。
func (u *CartUsecase) UpdateQuantity(ctx context.Context, userID string, productID string, qty int64) (CartView, error) {
	if userID == "" {
		return CartView{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID == "" {
		return CartView{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if qty < 0 {
		return CartView{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	products, err := u.catalog.ListProducts(ctx)
	if err != nil {
		return CartView{}, NewHTTPError(http.StatusBadGateway, "catalog unavailable")
	}

	if qty > 0 {
		product, ok := findProduct(products, productID)
		if !ok {
			return CartView{}, NewHTTPError(http.StatusBadRequest, "invalid product")
		}
		if qty > product.Stock {
			return CartView{}, NewHTTPError(http.StatusBadRequest, "stock exceeded")
		}
	}

	items, err := u.cartRepo.Load(ctx, userID)
	if err != nil {
		return CartView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items.SetQuantity(productID, qty)

	if err := u.cartRepo.Save(ctx, userID, items); err != nil {
		return CartView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return buildCartView(items, products), nil
}

// カタログに無い商品IDを保存対象のマッピングから取り除き、除いたIDを返す。
func pruneStaleLines(items model.CartItems, products []model.Product) []string {
	known := make(map[string]bool, len(products))
	for _, p := range products {
		known[p.ID] = true
	}

	var removed []string
	for id := range items {
		if !known[id] {
			removed = append(removed, id)
			delete(items, id)
		}
	}
	sort.Strings(removed)
	return removed
}

func findProduct(products []model.Product, productID string) (model.Product, bool) {
	for _, p := range products {
		if p.ID == productID {
			return p, true
		}
	}
	return model.Product{}, false
}

func buildCartView(items model.CartItems, products []model.Product) CartView {
	lines := pricing.Resolve(items, products)

	viewItems := make([]CartLineView, 0, len(lines))
	var count int64 = 0
	var amount int64 = 0

	for _, line := range lines {
		v := CartLineView{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			Price:     line.Product.EffectivePrice(),
			Quantity:  line.Quantity,
			LineTotal: line.LineTotal,
		}
		if len(line.Product.Images) > 0 {
			v.ImageURL = line.Product.Images[0].URL
		}
		viewItems = append(viewItems, v)

		count += line.Quantity
		amount += line.LineTotal
	}

	return CartView{
		Items:  viewItems,
		Count:  count,
		Amount: amount,
	}
}
