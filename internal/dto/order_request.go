package dto

type PlaceOrderRequest struct {
	Name    string           `json:"name"`
	Phone   string           `json:"phone"`
	Address string           `json:"address"`
	Note    string           `json:"note"`
	Items   []PlaceOrderItem `json:"items"`
	Total   float64          `json:"total"`
}

type PlaceOrderItem struct {
	ProductID int     `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}
