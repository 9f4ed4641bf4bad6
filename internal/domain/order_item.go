package domain

// OrderItem is a snapshot of one product at order time. ProductName and
// Price are copied from the catalog when the order is placed and never
// track later catalog changes.
type OrderItem struct {
	ID          uint
	OrderID     uint
	ProductID   int
	ProductName string
	Price       float64
	Quantity    int
}

func (i OrderItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}
