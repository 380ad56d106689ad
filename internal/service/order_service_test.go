package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/northwear-shop/internal/models"
	"github.com/northwear-shop/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func TestListByUserScopesAndSortsOrders(t *testing.T) {
	dsn := fmt.Sprintf("file:order_service_list_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Order{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	now := time.Now()
	orders := []models.Order{
		{UserID: 1, Items: models.QuantityMap{"1": 1}, TotalPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(100)), ProviderSessionID: "cs_a", CreatedAt: now.Add(-2 * time.Hour)},
		{UserID: 1, Items: models.QuantityMap{"2": 2}, TotalPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(200)), ProviderSessionID: "cs_b", CreatedAt: now.Add(-1 * time.Hour)},
		{UserID: 2, Items: models.QuantityMap{"3": 1}, TotalPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(50)), ProviderSessionID: "cs_c", CreatedAt: now},
	}
	for i := range orders {
		if err := db.Create(&orders[i]).Error; err != nil {
			t.Fatalf("create order failed: %v", err)
		}
	}

	svc := NewOrderService(repository.NewOrderRepository(db))
	got, err := svc.ListByUser(1)
	if err != nil {
		t.Fatalf("list by user failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(got))
	}
	if got[0].ProviderSessionID != "cs_b" || got[1].ProviderSessionID != "cs_a" {
		t.Fatalf("expected newest first, got %s then %s", got[0].ProviderSessionID, got[1].ProviderSessionID)
	}
}

func TestListByUserRejectsZeroUser(t *testing.T) {
	dsn := fmt.Sprintf("file:order_service_zero_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Order{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	svc := NewOrderService(repository.NewOrderRepository(db))
	_, err = svc.ListByUser(0)
	if !errors.Is(err, ErrInvalidUser) {
		t.Fatalf("expected ErrInvalidUser, got: %v", err)
	}
}

func TestGetForUserScopesOrderOwnership(t *testing.T) {
	dsn := fmt.Sprintf("file:order_service_get_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Order{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	order := models.Order{UserID: 1, Items: models.QuantityMap{"1": 1}, TotalPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(100)), ProviderSessionID: "cs_get"}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	svc := NewOrderService(repository.NewOrderRepository(db))

	got, err := svc.GetForUser(1, order.ID)
	if err != nil {
		t.Fatalf("get for user failed: %v", err)
	}
	if got.ProviderSessionID != "cs_get" {
		t.Fatalf("unexpected order: %+v", got)
	}

	// 他人订单与不存在的订单同样返回未找到
	if _, err := svc.GetForUser(2, order.ID); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound for foreign order, got: %v", err)
	}
	if _, err := svc.GetForUser(1, order.ID+100); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound for missing order, got: %v", err)
	}
}
