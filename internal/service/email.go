package service

import (
	"context"
	"fmt"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/logger"
	"rentacar-backend/internal/utils"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) SendBookingConfirmation(ctx context.Context, email, customerName, carName string, rental *domain.Rental) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", fmt.Sprintf("Booking confirmed: %s", carName))

	body := fmt.Sprintf(
		"Hello %s,\n\nYour booking of %s from %s to %s is confirmed.\n\nDuration: %s\nTotal price: %s\n\nSafe travels,\nThe Rent-a-Car Team",
		customerName,
		carName,
		rental.RentalDate.Format("2006-01-02"),
		rental.ReturnDate.Format("2006-01-02"),
		utils.RentalDuration(rental.RentalDate, rental.ReturnDate),
		utils.TotalPrice(rental.RentalDate, rental.ReturnDate, rental.DailyRate),
	)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send booking confirmation: %w", err)
	}
	return nil
}

// noopEmailService is used when no SMTP host is configured, e.g. in local
// development.
type noopEmailService struct{}

func NewNoopEmailService() EmailService {
	return noopEmailService{}
}

func (noopEmailService) SendBookingConfirmation(ctx context.Context, email, customerName, carName string, rental *domain.Rental) error {
	logger.Debug("Email disabled, skipping booking confirmation", "to", email, "car", carName)
	return nil
}
