package database

import (
	"fmt"
	"testing"

	"budgetwise/internal/config"
	"budgetwise/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestUser(t *testing.T, db *DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Email:        email,
		PasswordHash: "hashed_password",
		FirstName:    "Test",
		LastName:     "User",
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

func CreateTestCategory(t *testing.T, db *DB, user *models.User, name string) *models.Category {
	t.Helper()

	category := &models.Category{
		UserID: user.ID,
		Name:   name,
		Color:  "#22c55e",
	}

	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}

	return category
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"budgets",
		"transactions",
		"categories",
		"users",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
