package usecase

import (
	"context"
	"strings"

	"github.com/piresc/ridehail-admin/internal/pkg/logger"
	"github.com/piresc/ridehail-admin/internal/pkg/models"
	"github.com/piresc/ridehail-admin/internal/pkg/validator"
)

func (uc *CustomerUC) CreateCustomer(ctx context.Context, req models.CustomerRequest) (*models.Customer, error) {
	c := &models.Customer{
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
	}
	if err := validateCustomer(c); err != nil {
		return nil, err
	}

	existing, err := uc.customerRepo.GetCustomerByEmail(ctx, c.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("email %q already registered", c.Email)
	}

	created, err := uc.customerRepo.CreateCustomer(ctx, c)
	if err != nil {
		return nil, err
	}
	logger.Info("Customer created", logger.Int64("customer_id", created.ID))
	return created, nil
}

func (uc *CustomerUC) GetCustomerByID(ctx context.Context, id int64) (*models.Customer, error) {
	c, err := uc.customerRepo.GetCustomerByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, models.NewNotFoundError("customer %d", id)
	}
	return c, nil
}

func (uc *CustomerUC) ListCustomers(ctx context.Context) ([]*models.Customer, error) {
	return uc.customerRepo.ListCustomers(ctx)
}

func (uc *CustomerUC) UpdateCustomer(ctx context.Context, id int64, patch models.CustomerPatch) (*models.Customer, error) {
	existing, err := uc.customerRepo.GetCustomerByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, models.NewNotFoundError("customer %d", id)
	}

	merged := models.MergeCustomer(*existing, patch)
	merged.Name = strings.TrimSpace(merged.Name)
	merged.Email = strings.TrimSpace(merged.Email)
	merged.PhoneNumber = strings.TrimSpace(merged.PhoneNumber)
	if err := validateCustomer(&merged); err != nil {
		return nil, err
	}

	if !strings.EqualFold(merged.Email, existing.Email) {
		other, err := uc.customerRepo.GetCustomerByEmail(ctx, merged.Email)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != id {
			return nil, models.NewConflictError("email %q already registered", merged.Email)
		}
	}

	updated, err := uc.customerRepo.UpdateCustomer(ctx, &merged)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, models.NewNotFoundError("customer %d", id)
	}
	return updated, nil
}

func (uc *CustomerUC) DeleteCustomer(ctx context.Context, id int64) error {
	if err := uc.customerRepo.DeleteCustomer(ctx, id); err != nil {
		return err
	}
	logger.Info("Customer deleted", logger.Int64("customer_id", id))
	return nil
}

// FindCustomersByEmailDomain accepts "mail.com" or "@mail.com"
func (uc *CustomerUC) FindCustomersByEmailDomain(ctx context.Context, domain string) ([]*models.Customer, error) {
	domain = strings.TrimPrefix(strings.TrimSpace(domain), "@")
	if domain == "" {
		return nil, models.NewValidationError("email domain is required")
	}
	return uc.customerRepo.FindCustomersByEmailDomain(ctx, domain)
}

func (uc *CustomerUC) FindCustomersByPhonePrefix(ctx context.Context, prefix string) ([]*models.Customer, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return nil, models.NewValidationError("phone prefix is required")
	}
	return uc.customerRepo.FindCustomersByPhonePrefix(ctx, prefix)
}

func validateCustomer(c *models.Customer) error {
	if c.Name == "" {
		return models.NewValidationError("name is required")
	}
	if c.Email == "" {
		return models.NewValidationError("email is required")
	}
	if !validator.IsEmail(c.Email) {
		return models.NewValidationError("invalid email %q", c.Email)
	}
	if c.PhoneNumber == "" {
		return models.NewValidationError("phone number is required")
	}
	return nil
}
