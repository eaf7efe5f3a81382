package usecase

import (
	"context"
	"net/http"
	"sort"

	"quickcart/internal/domain/model"
	repo "quickcart/internal/repository"
)

// WishlistUsecase は購入者ごとのウィッシュリスト（商品IDの集合）を扱う。
type WishlistUsecase struct {
	wishlistRepo repo.WishlistRepository
	catalog      repo.CatalogGateway
}

func NewWishlistUsecase(wishlistRepo repo.WishlistRepository, catalog repo.CatalogGateway) *WishlistUsecase {
	return &WishlistUsecase{
		wishlistRepo: wishlistRepo,
		catalog:      catalog,
	}
}

type WishlistItemView struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Price     int64  `json:"price"`
	ImageURL  string `json:"image_url,omitempty"`
}

type WishlistView struct {
	Items []WishlistItemView `json:"items"`

	// カタログから消えていて刈り取った商品ID
	RemovedProductIDs []string `json:"removed_product_ids,omitempty"`
}

// List はウィッシュリストを返す。カートと同じく、
// カタログで解決できないIDは保存済みリストからも刈り取る。
func (u *WishlistUsecase) List(ctx context.Context, userID string) (WishlistView, error) {
	if userID == "" {
		return WishlistView{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	wishlist, err := u.wishlistRepo.Load(ctx, userID)
	if err != nil {
		return WishlistView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	products, err := u.catalog.ListProducts(ctx)
	if err != nil {
		return WishlistView{}, NewHTTPError(http.StatusBadGateway, "catalog unavailable")
	}

	known := make(map[string]model.Product, len(products))
	for _, p := range products {
		known[p.ID] = p
	}

	kept := make(model.Wishlist, 0, len(wishlist))
	var removed []string
	for _, id := range wishlist {
		if _, ok := known[id]; ok {
			kept = append(kept, id)
		} else {
			removed = append(removed, id)
		}
	}
	sort.Strings(removed)

	if len(removed) > 0 {
		if err := u.wishlistRepo.Save(ctx, userID, kept); err != nil {
			return WishlistView{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
	}

	view := WishlistView{Items: make([]WishlistItemView, 0, len(kept)), RemovedProductIDs: removed}
	for _, id := range kept {
		p := known[id]
		item := WishlistItemView{
			ProductID: p.ID,
			Name:      p.Name,
			Category:  p.Category,
			Price:     p.EffectivePrice(),
		}
		if len(p.Images) > 0 {
			item.ImageURL = p.Images[0].URL
		}
		view.Items = append(view.Items, item)
	}
	return view, nil
}

// Add は商品をウィッシュリストに入れる。重複は黙って無視する。
func (u *WishlistUsecase) Add(ctx context.Context, userID string, productID string) (WishlistView, error) {
	if userID == "" {
		return WishlistView{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID == "" {
		return WishlistView{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	products, err := u.catalog.ListProducts(ctx)
	if err != nil {
		return WishlistView{}, NewHTTPError(http.StatusBadGateway, "catalog unavailable")
	}
	if _, ok := findProduct(products, productID); !ok {
		return WishlistView{}, NewHTTPError(http.StatusBadRequest, "invalid product")
	}

	wishlist, err := u.wishlistRepo.Load(ctx, userID)
	if err != nil {
		return WishlistView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	wishlist = wishlist.Add(productID)

	if err := u.wishlistRepo.Save(ctx, userID, wishlist); err != nil {
		return WishlistView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.List(ctx, userID)
}

// Remove は商品をウィッシュリストから外す。無いIDでもエラーにしない。
func (u *WishlistUsecase) Remove(ctx context.Context, userID string, productID string) (WishlistView, error) {
	if userID == "" {
		return WishlistView{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID == "" {
		return WishlistView{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	wishlist, err := u.wishlistRepo.Load(ctx, userID)
	if err != nil {
		return WishlistView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	wishlist = wishlist.Remove(productID)

	if err := u.wishlistRepo.Save(ctx, userID, wishlist); err != nil {
		return WishlistView{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.List(ctx, userID)
}
