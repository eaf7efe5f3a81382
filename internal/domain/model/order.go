package model

// 注文作成APIへ送るペイロード
type OrderRequest struct {
	UserID          string      `json:"userId"`
	VendorID        string      `json:"vendorId"`
	Products        []OrderLine `json:"products"`
	DeliveryAddress string      `json:"deliveryAddress"`
	State           string      `json:"state"`
	Zipcode         string      `json:"zipcode"`
	ShippingFee     int64       `json:"shippingFee"`
	Tax             int64       `json:"tax"`
	Phone           string      `json:"phone"`
	PIN             string      `json:"pin"`
}

type OrderLine struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
	Price     int64  `json:"price"`
	VendorID  string `json:"vendorId"`
}

// 注文作成APIの成功レスポンス
type OrderAck struct {
	OrderID string `json:"orderId"`
	Message string `json:"message"`
}
