package model

// 購入者プロフィール（外部APIから取得）。
// Stateが「自宅の州」で、配送料率の判定に使う。
type BuyerProfile struct {
	UserID      string `json:"userId"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	State       string `json:"state"`
	Zipcode     string `json:"zipcode"`
	AddressLine string `json:"address"`
}
