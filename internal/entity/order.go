package domain

import "github.com/shopspring/decimal"

type OrderStatus string

const (
	OrderProcessing OrderStatus = "Processing"
	OrderShipped    OrderStatus = "Shipped"
	OrderDelivered  OrderStatus = "Delivered"
	OrderCancelled  OrderStatus = "Cancelled"
)

type Order struct {
	ID     string
	Date   string
	Status OrderStatus
	Total  decimal.Decimal
	Items  []LineItem
}
