package customer

import (
	"context"

	"github.com/piresc/ridehail-admin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/ridehail-admin/services/customer CustomerRepo

// CustomerRepo is the entity store for customers
type CustomerRepo interface {
	CreateCustomer(ctx context.Context, customer *models.Customer) (*models.Customer, error)
	GetCustomerByID(ctx context.Context, id int64) (*models.Customer, error)
	GetCustomerByEmail(ctx context.Context, email string) (*models.Customer, error)
	ListCustomers(ctx context.Context) ([]*models.Customer, error)
	FindCustomersByEmailDomain(ctx context.Context, domain string) ([]*models.Customer, error)
	FindCustomersByPhonePrefix(ctx context.Context, prefix string) ([]*models.Customer, error)
	UpdateCustomer(ctx context.Context, customer *models.Customer) (*models.Customer, error)
	DeleteCustomer(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
}
