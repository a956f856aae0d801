package customer

import (
	"context"

	"github.com/piresc/ridehail-admin/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/ridehail-admin/services/customer CustomerUC

type CustomerUC interface {
	CreateCustomer(ctx context.Context, req models.CustomerRequest) (*models.Customer, error)
	GetCustomerByID(ctx context.Context, id int64) (*models.Customer, error)
	ListCustomers(ctx context.Context) ([]*models.Customer, error)
	UpdateCustomer(ctx context.Context, id int64, patch models.CustomerPatch) (*models.Customer, error)
	DeleteCustomer(ctx context.Context, id int64) error
	FindCustomersByEmailDomain(ctx context.Context, domain string) ([]*models.Customer, error)
	FindCustomersByPhonePrefix(ctx context.Context, prefix string) ([]*models.Customer, error)
}
