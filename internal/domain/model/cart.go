package model

// CartItems は商品ID→数量のマッピング。数量は常に1以上。
type CartItems map[string]int64

// 1個追加（無ければ数量1で作成）
func (c CartItems) Add(productID string) {
	c[productID] = c[productID] + 1
}

// 数量を直接セット。0で行ごと削除する。
func (c CartItems) SetQuantity(productID string, qty int64) {
	if qty <= 0 {
		delete(c, productID)
		return
	}
	c[productID] = qty
}

// バッジ表示用の個数合計
func (c CartItems) Count() int64 {
	var n int64 = 0
	for _, qty := range c {
		n += qty
	}
	return n
}
