package database

import (
	"errors"
	"fmt"
	"log"
	"time"

	"budgetwise/internal/config"
	"budgetwise/internal/models"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Transaction{},
		&models.Budget{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (db *DB) Transaction(fn func(*gorm.DB) error) error {
	return db.DB.Transaction(fn)
}

func (db *DB) CreateIndexes() error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_users_email_lower ON users(LOWER(email))",
		"CREATE INDEX IF NOT EXISTS idx_transactions_user_category ON transactions(user_id, category_id)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_occurred_at ON transactions(occurred_at)",
		"CREATE INDEX IF NOT EXISTS idx_budgets_user_month ON budgets(user_id, month)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			log.Printf("Failed to create index: %s, error: %v", query, err)
		}
	}

	return nil
}

// defaultCategories is the fixture set created for every new user. This is
// storage-initialization data, not insight-engine logic.
var defaultCategories = []struct {
	Name  string
	Color string
}{
	{"Food", "hsl(var(--chart-1))"},
	{"Transport", "hsl(var(--chart-2))"},
	{"Housing", "hsl(var(--chart-3))"},
	{"Health", "hsl(var(--chart-4))"},
	{"Entertainment", "hsl(var(--chart-5))"},
	{"Apparel", "hsl(var(--chart-1))"},
}

// SeedDefaultCategories creates the default category set for a user.
// Existing categories are left untouched; seeding is idempotent per name.
func SeedDefaultCategories(db *gorm.DB, userID uuid.UUID) error {
	for _, seed := range defaultCategories {
		var existing models.Category
		err := db.Where("user_id = ? AND name = ?", userID, seed.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check existing category: %w", err)
		}

		category := &models.Category{
			UserID: userID,
			Name:   seed.Name,
			Color:  seed.Color,
		}
		if err := db.Create(category).Error; err != nil {
			return fmt.Errorf("failed to seed category %q: %w", seed.Name, err)
		}
	}
	return nil
}

// Initialize creates and configures the database connection
func Initialize(cfg *config.Config) (*DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := db.CreateIndexes(); err != nil {
		log.Printf("Warning: failed to create some indexes: %v", err)
	}

	log.Println("Database initialized successfully")

	return db, nil
}
