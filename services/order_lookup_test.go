package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"tableside/api"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func newLookupBackend(t *testing.T) (*api.Client, *[]string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var paths []string
	r := gin.New()
	r.GET("/orders/recent/:phone", func(c *gin.Context) {
		paths = append(paths, c.Request.URL.Path)
		c.JSON(http.StatusOK, gin.H{"orders": []gin.H{
			{"orderId": "ORD-1"}, {"orderId": "ORD-2"},
		}})
	})
	r.GET("/orders/:id", func(c *gin.Context) {
		paths = append(paths, c.Request.URL.Path)
		c.JSON(http.StatusOK, gin.H{"orderId": c.Param("id")})
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	client, err := api.NewClient(srv.URL, zap.NewNop())
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client, &paths
}

func TestLookupPhoneListsRecentOrders(t *testing.T) {
	client, paths := newLookupBackend(t)
	l := NewOrderLookup(client)

	orders, err := l.Find(context.Background(), "9876543210")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(orders) != 2 || orders[0].OrderID != "ORD-1" {
		t.Fatalf("unexpected orders: %+v", orders)
	}
	if len(*paths) != 1 || (*paths)[0] != "/orders/recent/9876543210" {
		t.Fatalf("unexpected request paths: %v", *paths)
	}
}

func TestLookupAnythingElseIsOrderID(t *testing.T) {
	client, paths := newLookupBackend(t)
	l := NewOrderLookup(client)

	for _, q := range []string{"ORD-42", "12345", "98765432101"} {
		orders, err := l.Find(context.Background(), q)
		if err != nil {
			t.Fatalf("Find(%q): %v", q, err)
		}
		if len(orders) != 1 || orders[0].OrderID != q {
			t.Fatalf("Find(%q) = %+v", q, orders)
		}
	}
	for _, p := range *paths {
		if p == "/orders/recent/12345" {
			t.Fatal("non-10-digit input must not hit the phone route")
		}
	}
}
