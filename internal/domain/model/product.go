package model

// 商品（外部カタログAPIから取得する読み取り専用データ）
// IDはストアAPI側の採番（文字列）をそのまま使う。
type Product struct {
	ID          string         `json:"id"`
	VendorID    string         `json:"vendorId"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Price       int64          `json:"price"`
	OfferPrice  *int64         `json:"offerPrice"`
	Stock       int64          `json:"stock"`
	Images      []ProductImage `json:"images"`
}

type ProductImage struct {
	URL string `json:"url"`
}

// 計算に使う価格。offerPriceがあればそちらを優先する。
func (p Product) EffectivePrice() int64 {
	if p.OfferPrice != nil {
		return *p.OfferPrice
	}
	return p.Price
}
