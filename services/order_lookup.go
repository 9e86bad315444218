package services

import (
	"context"
	"regexp"

	"tableside/api"
	"tableside/entity"
)

var phonePattern = regexp.MustCompile(`^\d{10}$`)

// OrderLookup backs the tracking screen's single search box: a 10-digit
// input is a phone number and lists that customer's recent orders,
// anything else is treated as an order id.
type OrderLookup struct {
	API *api.Client
}

func NewOrderLookup(client *api.Client) *OrderLookup { return &OrderLookup{API: client} }

func (l *OrderLookup) Find(ctx context.Context, searchValue string) ([]entity.Order, error) {
	if phonePattern.MatchString(searchValue) {
		return l.API.RecentOrders(ctx, searchValue)
	}
	o, err := l.API.Order(ctx, searchValue)
	if err != nil {
		return nil, err
	}
	return []entity.Order{*o}, nil
}
