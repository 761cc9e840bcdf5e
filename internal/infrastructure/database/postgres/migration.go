// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/soqi-sistemas/pedefacil-backend/internal/domain/catalog"
	"github.com/soqi-sistemas/pedefacil-backend/internal/domain/order"
	"github.com/soqi-sistemas/pedefacil-backend/internal/domain/settings"
	"github.com/soqi-sistemas/pedefacil-backend/internal/domain/upload"
)

// Migration handles database migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{
		db: db,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("Running database auto-migrations...")

	// UUID defaults need pgcrypto
	if err := m.db.Exec("CREATE EXTENSION IF NOT EXISTS pgcrypto").Error; err != nil {
		return fmt.Errorf("failed to enable pgcrypto: %w", err)
	}

	// Models in dependency order
	models := []interface{}{
		&catalog.Category{},
		&catalog.Product{},
		&order.Order{},
		&order.Item{},
		&settings.StoreSettings{},
		&upload.UploadedFile{},
	}

	for _, model := range models {
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	log.Println("Database auto-migrations completed")
	return nil
}

// CreateIndexes creates additional indexes for better performance
func (m *Migration) CreateIndexes() error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_products_category_available ON products(category_id, available)",
		"CREATE INDEX IF NOT EXISTS idx_products_featured ON products(featured, available)",
		"CREATE INDEX IF NOT EXISTS idx_products_name ON products(name)",

		"CREATE INDEX IF NOT EXISTS idx_categories_name ON categories(name)",

		"CREATE INDEX IF NOT EXISTS idx_orders_status_created ON orders(status, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_orders_customer_phone ON orders(customer_phone)",

		"CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)",
		"CREATE INDEX IF NOT EXISTS idx_order_items_product ON order_items(product_id)",
	}

	for _, indexSQL := range indexes {
		if err := m.db.Exec(indexSQL).Error; err != nil {
			log.Printf("Failed to create index: %v", err)
		}
	}

	return nil
}

// SeedInitialData inserts starter catalog data for development
func (m *Migration) SeedInitialData() error {
	log.Println("Seeding initial data...")

	if err := m.seedSettings(); err != nil {
		return fmt.Errorf("failed to seed settings: %w", err)
	}
	if err := m.seedCatalog(); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	log.Println("Initial data seeded")
	return nil
}

func (m *Migration) seedSettings() error {
	var count int64
	m.db.Model(&settings.StoreSettings{}).Count(&count)
	if count > 0 {
		return nil
	}

	defaults := settings.Defaults()
	return m.db.Create(&defaults).Error
}

func (m *Migration) seedCatalog() error {
	var count int64
	m.db.Model(&catalog.Category{}).Count(&count)
	if count > 0 {
		return nil
	}

	categories := []struct {
		catalog.Category
		products []catalog.Product
	}{
		{
			Category: catalog.Category{Name: "Lanches", Description: "Hambúrgueres e sanduíches"},
			products: []catalog.Product{
				{Name: "X-Burger", Description: "Pão, hambúrguer, queijo e salada", Price: decimal.NewFromFloat(18.90), Available: true, Featured: true},
				{Name: "X-Bacon", Description: "Pão, hambúrguer, bacon, queijo e salada", Price: decimal.NewFromFloat(22.90), Available: true},
			},
		},
		{
			Category: catalog.Category{Name: "Bebidas", Description: "Refrigerantes, sucos e água"},
			products: []catalog.Product{
				{Name: "Refrigerante Lata", Description: "350ml", Price: decimal.NewFromFloat(6.00), Available: true},
				{Name: "Suco Natural", Description: "Copo 400ml", Price: decimal.NewFromFloat(9.50), Available: true},
			},
		},
		{
			Category: catalog.Category{Name: "Sobremesas", Description: "Doces e sobremesas"},
			products: []catalog.Product{
				{Name: "Pudim", Description: "Fatia de pudim de leite", Price: decimal.NewFromFloat(8.00), Available: true},
			},
		},
	}

	for _, entry := range categories {
		category := entry.Category
		if err := m.db.Create(&category).Error; err != nil {
			return err
		}
		for _, product := range entry.products {
			product.CategoryID = category.ID
			if err := m.db.Create(&product).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
