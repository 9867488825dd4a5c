package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus enumerates the lifecycle states of an order.
// Orders are created pending and only ever move forward.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusFailed    OrderStatus = "failed"
)

// Order represents a buyer's purchase of a use case.
type Order struct {
	ID          uuid.UUID   `json:"id" db:"id"`
	BuyerID     string      `json:"buyerId" db:"buyer_id"`
	UseCaseID   string      `json:"useCaseId" db:"use_case_id"`
	AmountCents int64       `json:"amountCents" db:"amount_cents"`
	Status      OrderStatus `json:"status" db:"status"`
	CreatedAt   time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time   `json:"updatedAt" db:"updated_at"`
}

// PurchaseRequest is the request payload for purchasing a use case.
type PurchaseRequest struct {
	UseCaseID string `json:"useCaseId"`
}

// RevenueStats is the aggregate result of the seller revenue query,
// computed over completed orders only. Amounts are in minor units.
type RevenueStats struct {
	TotalRevenue  int64 `json:"totalRevenue" db:"total_revenue"`
	TotalOrders   int   `json:"totalOrders" db:"total_orders"`
	AvgOrderCents int64 `json:"avgOrderCents" db:"avg_order_value"`
}
