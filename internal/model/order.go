// Package model defines the order and tenant types shown on the dashboard.
package model

import (
	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	// OrderStatusDelivered indicates the order reached the customer
	OrderStatusDelivered OrderStatus = "Delivered"
	// OrderStatusShipped indicates the order left the warehouse
	OrderStatusShipped OrderStatus = "Shipped"
	// OrderStatusInTransit indicates the order is with the carrier
	OrderStatusInTransit OrderStatus = "In Transit"
	// OrderStatusPending indicates the order has not been processed yet
	OrderStatusPending OrderStatus = "Pending"
	// OrderStatusCancelled indicates the order was cancelled
	OrderStatusCancelled OrderStatus = "Cancelled"
	// OrderStatusPreparing indicates the order is being prepared
	OrderStatusPreparing OrderStatus = "Preparing"
)

// Order is a single immutable fixture record.
type Order struct {
	OrderID      string          `yaml:"orderId" json:"order_id"`
	CustomerName string          `yaml:"customerName" json:"customer_name"`
	Amount       decimal.Decimal `yaml:"amount" json:"amount"`
	Status       OrderStatus     `yaml:"status" json:"status"`
}

// Badge is the color pair used to render a status.
type Badge struct {
	Background string `json:"background"`
	Foreground string `json:"foreground"`
}

// Known reports whether the status is one of the fixed enumeration values.
func (s OrderStatus) Known() bool {
	switch s {
	case OrderStatusDelivered, OrderStatusShipped, OrderStatusInTransit,
		OrderStatusPending, OrderStatusCancelled, OrderStatusPreparing:
		return true
	default:
		return false
	}
}

// Badge returns the palette for the status. Unknown statuses get the grey palette.
func (s OrderStatus) Badge() Badge {
	switch s {
	case OrderStatusDelivered:
		return Badge{Background: "success-light", Foreground: "success-dark"}
	case OrderStatusShipped, OrderStatusPreparing:
		return Badge{Background: "info-light", Foreground: "info-dark"}
	case OrderStatusInTransit:
		return Badge{Background: "warning-light", Foreground: "warning-dark"}
	case OrderStatusPending:
		return Badge{Background: "secondary-light", Foreground: "secondary-dark"}
	case OrderStatusCancelled:
		return Badge{Background: "error-light", Foreground: "error-dark"}
	default:
		return Badge{Background: "grey-light", Foreground: "grey-dark"}
	}
}
