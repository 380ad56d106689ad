package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/northwear-shop/internal/constants"
	"github.com/northwear-shop/internal/models"
	"github.com/northwear-shop/internal/repository"
	"github.com/northwear-shop/internal/session"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func openCartTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Item{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func seedCartTestItem(t *testing.T, db *gorm.DB, name, price, providerPriceID string) models.Item {
	t.Helper()
	category := models.Category{Name: name + "-category"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	amount, err := decimal.NewFromString(price)
	if err != nil {
		t.Fatalf("parse price failed: %v", err)
	}
	item := models.Item{
		Name:            name,
		Price:           models.NewMoneyFromDecimal(amount),
		CategoryID:      category.ID,
		ProviderPriceID: providerPriceID,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("create item failed: %v", err)
	}
	return item
}

func TestCartAddItemNotFound(t *testing.T) {
	db := openCartTestDB(t, "cart_add_missing")
	store := session.NewMemoryStore(time.Hour)
	svc := NewCartService(store, repository.NewItemRepository(db))

	err := svc.AddItem(context.Background(), "sid", 999)
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got: %v", err)
	}
}

func TestCartAddItemAccumulates(t *testing.T) {
	db := openCartTestDB(t, "cart_add")
	item := seedCartTestItem(t, db, "sweater", "100.00", "price_sweater")
	store := session.NewMemoryStore(time.Hour)
	svc := NewCartService(store, repository.NewItemRepository(db))
	ctx := context.Background()

	if err := svc.AddItem(ctx, "sid", item.ID); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if err := svc.AddItem(ctx, "sid", item.ID); err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	lines, total, err := svc.View(ctx, "sid")
	if err != nil {
		t.Fatalf("view cart failed: %v", err)
	}
	if len(lines) != 1 || lines[0].Quantity != 2 {
		t.Fatalf("unexpected cart lines: %+v", lines)
	}
	if total.String() != "200.00" {
		t.Fatalf("expected total 200, got %s", total.String())
	}

	flashes, err := svc.PopFlashes(ctx, "sid")
	if err != nil {
		t.Fatalf("pop flashes failed: %v", err)
	}
	if len(flashes) != 2 {
		t.Fatalf("expected 2 flash messages, got %d", len(flashes))
	}
	flashes, err = svc.PopFlashes(ctx, "sid")
	if err != nil {
		t.Fatalf("pop flashes failed: %v", err)
	}
	if len(flashes) != 0 {
		t.Fatalf("expected drained flashes, got %d", len(flashes))
	}
}

func TestCartUpdateItemDecreaseRemovesAtZero(t *testing.T) {
	db := openCartTestDB(t, "cart_update")
	item := seedCartTestItem(t, db, "jacket", "250.00", "price_jacket")
	store := session.NewMemoryStore(time.Hour)
	svc := NewCartService(store, repository.NewItemRepository(db))
	ctx := context.Background()

	if err := svc.AddItem(ctx, "sid", item.ID); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if err := svc.UpdateItem(ctx, "sid", item.ID, constants.CartActionIncrease); err != nil {
		t.Fatalf("increase failed: %v", err)
	}
	if err := svc.UpdateItem(ctx, "sid", item.ID, constants.CartActionDecrease); err != nil {
		t.Fatalf("decrease failed: %v", err)
	}
	if err := svc.UpdateItem(ctx, "sid", item.ID, constants.CartActionDecrease); err != nil {
		t.Fatalf("decrease failed: %v", err)
	}

	lines, _, err := svc.View(ctx, "sid")
	if err != nil {
		t.Fatalf("view cart failed: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected empty cart after decreasing to zero, got %+v", lines)
	}
}

func TestCartUpdateItemAbsentIsNoOp(t *testing.T) {
	db := openCartTestDB(t, "cart_update_absent")
	store := session.NewMemoryStore(time.Hour)
	svc := NewCartService(store, repository.NewItemRepository(db))

	if err := svc.UpdateItem(context.Background(), "sid", 42, constants.CartActionDecrease); err != nil {
		t.Fatalf("expected silent no-op for absent item, got: %v", err)
	}
}

func TestCartUpdateItemInvalidAction(t *testing.T) {
	db := openCartTestDB(t, "cart_update_action")
	store := session.NewMemoryStore(time.Hour)
	svc := NewCartService(store, repository.NewItemRepository(db))

	err := svc.UpdateItem(context.Background(), "sid", 1, "remove")
	if !errors.Is(err, ErrInvalidCartAction) {
		t.Fatalf("expected ErrInvalidCartAction, got: %v", err)
	}
}

func TestCartClear(t *testing.T) {
	db := openCartTestDB(t, "cart_clear")
	item := seedCartTestItem(t, db, "boots", "1299.00", "price_boots")
	store := session.NewMemoryStore(time.Hour)
	svc := NewCartService(store, repository.NewItemRepository(db))
	ctx := context.Background()

	if err := svc.AddItem(ctx, "sid", item.ID); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if err := svc.Clear(ctx, "sid"); err != nil {
		t.Fatalf("clear cart failed: %v", err)
	}
	lines, _, err := svc.View(ctx, "sid")
	if err != nil {
		t.Fatalf("view cart failed: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected empty cart, got %+v", lines)
	}
}

func TestCartViewFailsWhenItemRemoved(t *testing.T) {
	db := openCartTestDB(t, "cart_view_removed")
	item := seedCartTestItem(t, db, "jacket", "899.00", "price_jacket")
	store := session.NewMemoryStore(time.Hour)
	svc := NewCartService(store, repository.NewItemRepository(db))
	ctx := context.Background()

	if err := svc.AddItem(ctx, "sid", item.ID); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if err := db.Delete(&models.Item{}, item.ID).Error; err != nil {
		t.Fatalf("delete item failed: %v", err)
	}

	// 下架后的购物车条目让整单计价失败，不做部分降级
	_, _, err := svc.View(ctx, "sid")
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got: %v", err)
	}
}
