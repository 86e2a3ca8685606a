// Package generator synthesizes plausible random entity values for demo
// seeding. It only produces candidate values; uniqueness against the store
// and persistence are the service layer's job.
package generator

import (
	"fmt"
	"math"
	"strings"
	"time"

	"rentacar-backend/internal/domain"

	"github.com/brianvoe/gofakeit/v6"
)

type Generator struct {
	faker *gofakeit.Faker
}

// New returns a generator with a random seed.
func New() *Generator {
	return &Generator{faker: gofakeit.New(0)}
}

// NewSeeded returns a deterministic generator, for tests.
func NewSeeded(seed uint64) *Generator {
	return &Generator{faker: gofakeit.New(int64(seed))}
}

func (g *Generator) CompanyName() string {
	return g.faker.Company()
}

// Customer produces a candidate customer. The email is derived from the
// first name plus a random numeric suffix, lowercased, so retries against
// an existing dataset converge quickly.
func (g *Generator) Customer() domain.Customer {
	now := time.Now()
	firstName := g.faker.FirstName()
	return domain.Customer{
		Name:      firstName,
		DateBirth: g.faker.DateRange(now.AddDate(-80, 0, 0), now.AddDate(-18, 0, 0)),
		Email:     g.email(firstName),
	}
}

func (g *Generator) email(firstName string) string {
	return strings.ToLower(fmt.Sprintf("%s%d@%s", firstName, g.faker.Number(1, 99999), g.faker.DomainName()))
}

// Car produces a candidate car referencing the given company id. The color
// is a 6-hex-digit string without the leading '#'.
func (g *Generator) Car(companyID int32) domain.Car {
	return domain.Car{
		Name:      g.faker.CarMaker() + " " + g.faker.CarModel(),
		Type:      g.faker.CarType(),
		Year:      int32(g.faker.Number(1990, time.Now().Year())),
		Color:     strings.TrimPrefix(g.faker.HexColor(), "#"),
		DailyRate: g.DailyRate(),
		Company:   domain.CompanyRef{ID: companyID},
	}
}

// DailyRate is a rate in [10, 100] with 2 decimal places.
func (g *Generator) DailyRate() float64 {
	return math.Round(g.faker.Float64Range(10, 100)*100) / 100
}

// RentalDates returns a rental date within the past 3 months and a return
// date between it and now.
func (g *Generator) RentalDates(now time.Time) (rentalDate, returnDate time.Time) {
	rentalDate = g.faker.DateRange(now.AddDate(0, -3, 0), now)
	returnDate = g.faker.DateRange(rentalDate, now)
	return rentalDate, returnDate
}
