package services

import (
	"fmt"
	"time"

	"budgetwise/internal/models"
	"budgetwise/internal/repositories"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SampleDataService generates realistic expense data for development and
// demo environments.
type SampleDataService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
}

// NewSampleDataService creates a new sample data service
func NewSampleDataService(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
) SampleDataServiceInterface {
	return &SampleDataService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// GenerateSampleTransactions creates count fake transactions spread across
// the 90 days leading up to reference, drawn from the user's categories.
func (s *SampleDataService) GenerateSampleTransactions(userID uuid.UUID, reference time.Time, count int) ([]models.Transaction, error) {
	if count <= 0 {
		return nil, nil
	}

	categories, err := s.categoryRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("user %s has no categories to sample from", userID)
	}

	transactions := make([]models.Transaction, 0, count)
	for i := 0; i < count; i++ {
		category := categories[gofakeit.Number(0, len(categories)-1)]
		daysAgo := gofakeit.Number(0, 89)
		occurredAt := reference.AddDate(0, 0, -daysAgo)

		amount := decimal.NewFromFloat(gofakeit.Price(2, 450)).Round(2)

		transactions = append(transactions, models.Transaction{
			UserID:      userID,
			CategoryID:  category.ID,
			OccurredAt:  occurredAt,
			Description: sampleDescription(category.Name),
			Amount:      amount,
		})
	}

	if err := s.transactionRepo.CreateBatch(transactions); err != nil {
		return nil, err
	}

	return transactions, nil
}

func sampleDescription(categoryName string) string {
	switch categoryName {
	case "Food":
		return gofakeit.RandomString([]string{
			fmt.Sprintf("%s lunch", gofakeit.Company()),
			"Grocery run",
			"Coffee",
			fmt.Sprintf("Dinner at %s", gofakeit.LastName()),
		})
	case "Transport":
		return gofakeit.RandomString([]string{"Fuel", "Metro pass", "Cab fare", "Parking"})
	case "Housing":
		return gofakeit.RandomString([]string{"Rent", "Electricity bill", "Internet bill", "Maintenance"})
	case "Health":
		return gofakeit.RandomString([]string{"Pharmacy", "Gym membership", "Clinic visit"})
	case "Entertainment":
		return gofakeit.RandomString([]string{"Streaming subscription", "Movie tickets", "Concert"})
	case "Apparel":
		return gofakeit.RandomString([]string{"Shoes", "Jacket", fmt.Sprintf("%s order", gofakeit.Company())})
	default:
		return gofakeit.ProductName()
	}
}
