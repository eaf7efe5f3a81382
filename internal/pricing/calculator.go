package pricing

import "quickcart/internal/domain/model"

// 配送料率（%）。配送先が自宅と同じ州なら5%、違う州なら10%。
const (
	IntraStateFeePercent int64 = 5
	InterStateFeePercent int64 = 10
	TaxPercent           int64 = 2
)

// カタログで解決できたカート1行
type Line struct {
	Product   model.Product
	Quantity  int64
	LineTotal int64
}

// 注文金額の内訳。毎回カートから作り直し、保存はしない。
type Quote struct {
	ItemsTotal         int64 `json:"items_total"`
	ShippingFeePercent int64 `json:"shipping_fee_percent"`
	ShippingFee        int64 `json:"shipping_fee"`
	Tax                int64 `json:"tax"`
	GrandTotal         int64 `json:"grand_total"`
}

// Resolve はカートをカタログと突き合わせて明細にする。
// カタログに無い商品IDの行は結果に含めない（金額にも数えない）。
// 出力順はカタログ順で安定させる。
func Resolve(items model.CartItems, catalog []model.Product) []Line {
	lines := make([]Line, 0, len(items))
	for _, p := range catalog {
		qty, ok := items[p.ID]
		if !ok || qty <= 0 {
			continue
		}
		lines = append(lines, Line{
			Product:   p,
			Quantity:  qty,
			LineTotal: qty * p.EffectivePrice(),
		})
	}
	return lines
}

// Amount は解決できた行の qty × 実効価格 の合計。
func Amount(items model.CartItems, catalog []model.Product) int64 {
	var total int64 = 0
	for _, line := range Resolve(items, catalog) {
		total += line.LineTotal
	}
	return total
}

// Compute は金額内訳を同期的に導出する純関数。
// deliveryStateが未選択（空）の間は送料も税も0のまま。
// 端数は切り捨て（int64の整数除算）で確定させる。
func Compute(items model.CartItems, catalog []model.Product, homeState string, deliveryState string) Quote {
	total := Amount(items, catalog)

	q := Quote{ItemsTotal: total, GrandTotal: total}
	if deliveryState == "" {
		return q
	}

	// 州名は大文字小文字も含めた完全一致で比較する
	if deliveryState == homeState {
		q.ShippingFeePercent = IntraStateFeePercent
	} else {
		q.ShippingFeePercent = InterStateFeePercent
	}

	q.ShippingFee = total * q.ShippingFeePercent / 100
	q.Tax = total * TaxPercent / 100
	q.GrandTotal = total + q.ShippingFee + q.Tax
	return q
}
