package service

import (
	"context"
	"fmt"
	"strings"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/generator"
	"rentacar-backend/internal/logger"
	"rentacar-backend/internal/repository"
)

type companyService struct {
	companyRepo repository.CompanyRepository
	carRepo     repository.CarRepository
	gen         *generator.Generator
}

func NewCompanyService(companyRepo repository.CompanyRepository, carRepo repository.CarRepository, gen *generator.Generator) CompanyService {
	return &companyService{
		companyRepo: companyRepo,
		carRepo:     carRepo,
		gen:         gen,
	}
}

func (s *companyService) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	return s.companyRepo.List(ctx)
}

func (s *companyService) SearchCompanies(ctx context.Context, query string) ([]domain.Company, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.companyRepo.List(ctx)
	}
	return s.companyRepo.Search(ctx, query)
}

func (s *companyService) GetCompany(ctx context.Context, id int32) (*domain.Company, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "company", id)
	}
	return company, nil
}

func (s *companyService) CreateCompany(ctx context.Context, company *domain.Company) error {
	if err := s.validate(ctx, company, 0); err != nil {
		return err
	}
	return s.companyRepo.Create(ctx, company)
}

func (s *companyService) UpdateCompany(ctx context.Context, company *domain.Company) error {
	if err := s.validate(ctx, company, company.ID); err != nil {
		return err
	}
	if err := s.companyRepo.Update(ctx, company); err != nil {
		return notFound(err, "company", company.ID)
	}
	return nil
}

// validate checks the required name field and the case-insensitive name
// uniqueness shared with the generator path.
func (s *companyService) validate(ctx context.Context, company *domain.Company, excludeID int32) error {
	company.Name = strings.TrimSpace(company.Name)
	if company.Name == "" {
		return invalidf("company name is required")
	}
	exists, err := s.companyRepo.ExistsByName(ctx, company.Name, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("company name %q %w", company.Name, ErrDuplicate)
	}
	return nil
}

// DeleteCompany rejects the delete while cars still reference the company,
// so car rows can never hold a dangling company id.
func (s *companyService) DeleteCompany(ctx context.Context, id int32) error {
	count, err := s.carRepo.CountByCompany(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("company %d is %w: %d cars", id, ErrInUse, count)
	}
	if err := s.companyRepo.Delete(ctx, id); err != nil {
		return notFound(err, "company", id)
	}
	return nil
}

func (s *companyService) GenerateCompanies(ctx context.Context, amount int32) error {
	if err := validateAmount(amount); err != nil {
		return err
	}

	existing, err := s.companyRepo.List(ctx)
	if err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(existing))
	for _, c := range existing {
		seen[strings.ToLower(c.Name)] = struct{}{}
	}

	batch := make([]domain.Company, 0, amount)
	maxAttempts := int(amount) * generateRetryFactor
	for attempts := 0; len(batch) < int(amount); attempts++ {
		if attempts >= maxAttempts {
			return fmt.Errorf("could not generate %d unique company names after %d attempts", amount, maxAttempts)
		}
		name := s.gen.CompanyName()
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		batch = append(batch, domain.Company{Name: name})
	}

	logger.Debug("Generated company batch", "amount", amount)
	return s.companyRepo.CreateBatch(ctx, batch)
}
