package types

import "time"

type Status string

const (
	PendingStatus    Status = "Pending"
	PreparingStatus  Status = "Preparing"
	CookedStatus     Status = "Cooked"
	DeliveringStatus Status = "Delivering"
	CompletedStatus  Status = "Completed"
	CancelledStatus  Status = "Cancelled"
)

type OrderItem struct {
	FoodName string  `json:"foodName"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type Order struct {
	OrderID        string      `json:"orderId"`
	OrderCode      string      `json:"orderCode"`
	OrderStatus    Status      `json:"orderStatus"`
	Items          []OrderItem `json:"items"`
	TotalFoodPrice float64     `json:"totalFoodPrice"`
	OrderDate      time.Time   `json:"orderDate"`
	UserName       string      `json:"userName"`
	Phone          string      `json:"phone"`
	OrderType      string      `json:"orderType"`
}
