package usecase

import (
	"github.com/piresc/ridehail-admin/internal/pkg/models"
	"github.com/piresc/ridehail-admin/services/customer"
)

type CustomerUC struct {
	customerRepo customer.CustomerRepo
	cfg          *models.Config
}

func NewCustomerUC(customerRepo customer.CustomerRepo, cfg *models.Config) *CustomerUC {
	return &CustomerUC{
		customerRepo: customerRepo,
		cfg:          cfg,
	}
}
