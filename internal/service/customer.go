package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/generator"
	"rentacar-backend/internal/logger"
	"rentacar-backend/internal/repository"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type customerService struct {
	customerRepo repository.CustomerRepository
	rentalRepo   repository.RentalRepository
	gen          *generator.Generator
}

func NewCustomerService(customerRepo repository.CustomerRepository, rentalRepo repository.RentalRepository, gen *generator.Generator) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		rentalRepo:   rentalRepo,
		gen:          gen,
	}
}

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.customerRepo.List(ctx)
}

func (s *customerService) SearchCustomers(ctx context.Context, query string) ([]domain.Customer, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.customerRepo.List(ctx)
	}
	return s.customerRepo.Search(ctx, query)
}

func (s *customerService) GetCustomer(ctx context.Context, id int32) (*domain.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "customer", id)
	}
	return customer, nil
}

func (s *customerService) CreateCustomer(ctx context.Context, customer *domain.Customer) error {
	if err := s.validate(ctx, customer, 0); err != nil {
		return err
	}
	return s.customerRepo.Create(ctx, customer)
}

func (s *customerService) UpdateCustomer(ctx context.Context, customer *domain.Customer) error {
	if err := s.validate(ctx, customer, customer.ID); err != nil {
		return err
	}
	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return notFound(err, "customer", customer.ID)
	}
	return nil
}

func (s *customerService) validate(ctx context.Context, customer *domain.Customer, excludeID int32) error {
	customer.Name = strings.TrimSpace(customer.Name)
	customer.Email = strings.TrimSpace(customer.Email)
	if customer.Name == "" {
		return invalidf("customer name is required")
	}
	if !emailPattern.MatchString(customer.Email) {
		return invalidf("invalid email address")
	}
	if customer.DateBirth.After(time.Now()) {
		return invalidf("date of birth must not be in the future")
	}
	exists, err := s.customerRepo.ExistsByEmail(ctx, customer.Email, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("customer email %q %w", customer.Email, ErrDuplicate)
	}
	return nil
}

// DeleteCustomer rejects the delete while rentals still reference the
// customer.
func (s *customerService) DeleteCustomer(ctx context.Context, id int32) error {
	count, err := s.rentalRepo.CountByCustomer(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("customer %d is %w: %d rentals", id, ErrInUse, count)
	}
	if err := s.customerRepo.Delete(ctx, id); err != nil {
		return notFound(err, "customer", id)
	}
	return nil
}

func (s *customerService) GenerateCustomers(ctx context.Context, amount int32) error {
	if err := validateAmount(amount); err != nil {
		return err
	}

	existing, err := s.customerRepo.List(ctx)
	if err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(existing))
	for _, c := range existing {
		seen[strings.ToLower(c.Email)] = struct{}{}
	}

	batch := make([]domain.Customer, 0, amount)
	maxAttempts := int(amount) * generateRetryFactor
	for attempts := 0; len(batch) < int(amount); attempts++ {
		if attempts >= maxAttempts {
			return fmt.Errorf("could not generate %d unique customer emails after %d attempts", amount, maxAttempts)
		}
		candidate := s.gen.Customer()
		key := strings.ToLower(candidate.Email)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		batch = append(batch, candidate)
	}

	logger.Debug("Generated customer batch", "amount", amount)
	return s.customerRepo.CreateBatch(ctx, batch)
}
