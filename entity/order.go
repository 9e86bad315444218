package entity

import (
	"time"
)

// OrderStatus tracks kitchen/service progress. The enum is ordered and
// monotonic in normal operation.
type OrderStatus string

const (
	StatusReceived  OrderStatus = "received"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusServed    OrderStatus = "served"
	StatusCompleted OrderStatus = "completed"
)

// PaymentStatus is tracked separately from OrderStatus.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
)

var statusOrder = []OrderStatus{
	StatusReceived,
	StatusPreparing,
	StatusReady,
	StatusServed,
	StatusCompleted,
}

var statusLabels = map[OrderStatus]string{
	StatusReceived:  "Received",
	StatusPreparing: "Preparing",
	StatusReady:     "Ready",
	StatusServed:    "Served",
	StatusCompleted: "Completed",
}

// Index returns the position of s in the status progression, or -1 for an
// unknown status.
func (s OrderStatus) Index() int {
	for i, st := range statusOrder {
		if st == s {
			return i
		}
	}
	return -1
}

func (s OrderStatus) Valid() bool { return s.Index() >= 0 }

// StatusStep is one entry of the tracking screen's progress rail.
type StatusStep struct {
	Key       OrderStatus
	Label     string
	Completed bool
	Current   bool
}

// StatusSteps renders the progression for a given status: a step is
// completed when its index <= the current index, and current when equal.
// An unknown status leaves every step incomplete.
func StatusSteps(current OrderStatus) []StatusStep {
	idx := current.Index()
	steps := make([]StatusStep, 0, len(statusOrder))
	for i, st := range statusOrder {
		steps = append(steps, StatusStep{
			Key:       st,
			Label:     statusLabels[st],
			Completed: idx >= 0 && i <= idx,
			Current:   i == idx,
		})
	}
	return steps
}

type OrderItem struct {
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Qty        int     `json:"qty"`
	Notes      string  `json:"notes,omitempty"`
}

// Order is the record held by the tracking and admin screens. ID is the
// backend's internal record key, OrderID the stable external key.
type Order struct {
	ID               string        `json:"_id"`
	OrderID          string        `json:"orderId"`
	TableNumber      string        `json:"tableNumber"`
	CustomerName     string        `json:"customerName"`
	CustomerPhone    string        `json:"customerPhone"`
	OrderStatus      OrderStatus   `json:"orderStatus"`
	PaymentStatus    PaymentStatus `json:"paymentStatus,omitempty"`
	Items            []OrderItem   `json:"items,omitempty"`
	Subtotal         float64       `json:"subtotal,omitempty"`
	Tax              float64       `json:"tax,omitempty"`
	Total            float64       `json:"total"`
	CreatedAt        time.Time     `json:"createdAt"`
	EstimatedReadyAt *time.Time    `json:"estimatedReadyAt,omitempty"`
}

// OrderUpdate is the partial payload carried by an admin_order_updated push
// event. Absent fields stay nil and leave the held record untouched.
type OrderUpdate struct {
	ID               string         `json:"_id"`
	OrderID          string         `json:"orderId"`
	TableNumber      *string        `json:"tableNumber"`
	CustomerName     *string        `json:"customerName"`
	CustomerPhone    *string        `json:"customerPhone"`
	OrderStatus      *OrderStatus   `json:"orderStatus"`
	PaymentStatus    *PaymentStatus `json:"paymentStatus"`
	Total            *float64       `json:"total"`
	EstimatedReadyAt *time.Time     `json:"estimatedReadyAt"`
}

// Matches reports whether the update targets o, by internal or external key.
func (u *OrderUpdate) Matches(o *Order) bool {
	if u.ID != "" && u.ID == o.ID {
		return true
	}
	return u.OrderID != "" && u.OrderID == o.OrderID
}

// ApplyTo shallow-merges the update onto o; fields present in the event win.
func (u *OrderUpdate) ApplyTo(o *Order) {
	if u.TableNumber != nil {
		o.TableNumber = *u.TableNumber
	}
	if u.CustomerName != nil {
		o.CustomerName = *u.CustomerName
	}
	if u.CustomerPhone != nil {
		o.CustomerPhone = *u.CustomerPhone
	}
	if u.OrderStatus != nil {
		o.OrderStatus = *u.OrderStatus
	}
	if u.PaymentStatus != nil {
		o.PaymentStatus = *u.PaymentStatus
	}
	if u.Total != nil {
		o.Total = *u.Total
	}
	if u.EstimatedReadyAt != nil {
		o.EstimatedReadyAt = u.EstimatedReadyAt
	}
}
