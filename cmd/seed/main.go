package main

import (
	"github.com/northwear-shop/internal/config"
	"github.com/northwear-shop/internal/logger"
	"github.com/northwear-shop/internal/models"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加分类
	categories := []models.Category{
		{Name: "Clothing", Description: "Apparel and everyday wear"},
		{Name: "Footwear", Description: "Shoes and boots"},
		{Name: "Accessories", Description: "Bags, belts and more"},
	}

	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("name = ?", cat.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Name, err)
			} else {
				stdLog.Printf("Created category: %s", cat.Name)
			}
		} else {
			stdLog.Printf("Category already exists: %s", cat.Name)
		}
	}

	// 获取分类ID
	categoryIDs := map[string]uint{}
	var categoryList []models.Category
	if err := models.DB.Where("name IN ?", []string{"Clothing", "Footwear", "Accessories"}).Find(&categoryList).Error; err != nil {
		stdLog.Fatalf("Failed to load categories: %v", err)
	}
	for _, cat := range categoryList {
		categoryIDs[cat.Name] = cat.ID
	}

	// 添加商品
	items := []models.Item{
		{
			Name:            "Wool Sweater",
			Body:            "Heavy knit wool sweater for northern winters.",
			ImageURL:        "/images/wool-sweater.jpg",
			Price:           mustMoney("499.00"),
			CategoryID:      categoryIDs["Clothing"],
			ProviderPriceID: "price_wool_sweater",
		},
		{
			Name:            "Rain Jacket",
			Body:            "Waterproof shell jacket with taped seams.",
			ImageURL:        "/images/rain-jacket.jpg",
			Price:           mustMoney("899.00"),
			CategoryID:      categoryIDs["Clothing"],
			ProviderPriceID: "price_rain_jacket",
		},
		{
			Name:            "Hiking Boots",
			Body:            "Leather hiking boots with a rugged outsole.",
			ImageURL:        "/images/hiking-boots.jpg",
			Price:           mustMoney("1299.00"),
			CategoryID:      categoryIDs["Footwear"],
			ProviderPriceID: "price_hiking_boots",
		},
		{
			Name:            "Canvas Tote",
			Body:            "Everyday canvas tote bag.",
			ImageURL:        "/images/canvas-tote.jpg",
			Price:           mustMoney("199.00"),
			CategoryID:      categoryIDs["Accessories"],
			ProviderPriceID: "",
		},
	}

	for _, item := range items {
		var existing models.Item
		if err := models.DB.Where("name = ?", item.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&item).Error; err != nil {
				stdLog.Printf("Failed to create item %s: %v", item.Name, err)
			} else {
				stdLog.Printf("Created item: %s", item.Name)
			}
		} else {
			stdLog.Printf("Item already exists: %s", item.Name)
		}
	}

	stdLog.Printf("Seed completed")
}

func mustMoney(value string) models.Money {
	money, err := models.NewMoneyFromString(value)
	if err != nil {
		panic(err)
	}
	return money
}
