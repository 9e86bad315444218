package services

import (
	"context"
	"errors"

	"tableside/api"
	"tableside/entity"
)

var ErrEmptyCart = errors.New("cart is empty")

// CheckoutService turns a table's cart into an order. The cart is cleared
// only after the backend confirms the order.
type CheckoutService struct {
	API  *api.Client
	Cart *CartStore
}

func NewCheckoutService(client *api.Client, cart *CartStore) *CheckoutService {
	return &CheckoutService{API: client, Cart: cart}
}

type CustomerInfo struct {
	Name  string
	Phone string
}

func (s *CheckoutService) Submit(ctx context.Context, cust CustomerInfo) (*entity.Order, error) {
	lines := s.Cart.Items()
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	items := make([]entity.OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, entity.OrderItem{
			MenuItemID: l.MenuItemID,
			Name:       l.Name,
			Price:      l.Price,
			Qty:        l.Qty,
			Notes:      l.Notes,
		})
	}

	order, err := s.API.CreateOrder(ctx, api.CheckoutIn{
		TableNumber:   s.Cart.Table(),
		CustomerName:  cust.Name,
		CustomerPhone: cust.Phone,
		Items:         items,
	})
	if err != nil {
		return nil, err
	}

	s.Cart.Clear()
	return order, nil
}
