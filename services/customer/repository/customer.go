package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/ridehail-admin/internal/pkg/database"
	"github.com/piresc/ridehail-admin/internal/pkg/models"
)

const customerColumns = `id, name, email, phone_number, created_at, updated_at`

type CustomerRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

func NewCustomerRepository(cfg *models.Config, db *sqlx.DB) *CustomerRepo {
	return &CustomerRepo{
		cfg: cfg,
		db:  db,
	}
}

func (r *CustomerRepo) CreateCustomer(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	query := `
		INSERT INTO customers (name, email, phone_number, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING ` + customerColumns

	var created models.Customer
	err := r.db.QueryRowxContext(ctx, query, customer.Name, customer.Email, customer.PhoneNumber).StructScan(&created)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, models.NewConflictError("email %q already registered", customer.Email)
		}
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return &created, nil
}

func (r *CustomerRepo) GetCustomerByID(ctx context.Context, id int64) (*models.Customer, error) {
	return r.getOne(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)
}

// GetCustomerByEmail matches case-insensitively
func (r *CustomerRepo) GetCustomerByEmail(ctx context.Context, email string) (*models.Customer, error) {
	return r.getOne(ctx, `SELECT `+customerColumns+` FROM customers WHERE LOWER(email) = LOWER($1)`, email)
}

func (r *CustomerRepo) getOne(ctx context.Context, query string, arg interface{}) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.GetContext(ctx, &customer, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return &customer, nil
}

func (r *CustomerRepo) ListCustomers(ctx context.Context) ([]*models.Customer, error) {
	return r.list(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY id`)
}

// FindCustomersByEmailDomain matches the part after '@', ignoring case
func (r *CustomerRepo) FindCustomersByEmailDomain(ctx context.Context, domain string) ([]*models.Customer, error) {
	return r.list(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE email ILIKE $1 ORDER BY id`,
		"%@"+escapeLike(domain))
}

func (r *CustomerRepo) FindCustomersByPhonePrefix(ctx context.Context, prefix string) ([]*models.Customer, error) {
	return r.list(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE phone_number LIKE $1 ORDER BY id`,
		escapeLike(prefix)+"%")
}

func (r *CustomerRepo) list(ctx context.Context, query string, args ...interface{}) ([]*models.Customer, error) {
	customers := []*models.Customer{}
	if err := r.db.SelectContext(ctx, &customers, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

func (r *CustomerRepo) UpdateCustomer(ctx context.Context, customer *models.Customer) (*models.Customer, error) {
	query := `
		UPDATE customers
		SET name = $1, email = $2, phone_number = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING ` + customerColumns

	var updated models.Customer
	err := r.db.QueryRowxContext(ctx, query, customer.Name, customer.Email, customer.PhoneNumber, customer.ID).StructScan(&updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		if database.IsUniqueViolation(err) {
			return nil, models.NewConflictError("email %q already registered", customer.Email)
		}
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	return &updated, nil
}

// DeleteCustomer removes the customer; trips and payments cascade
func (r *CustomerRepo) DeleteCustomer(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	return nil
}

func (r *CustomerRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM customers WHERE id = $1)`, id); err != nil {
		return false, fmt.Errorf("failed to check customer: %w", err)
	}
	return exists, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
