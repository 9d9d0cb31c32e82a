package service

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"rentkart-backend/internal/domain"
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

func (s *emailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *emailService) SendWelcomeEmail(ctx context.Context, to, name string) error {
	body := fmt.Sprintf("Hello %s,\n\nWelcome to RentKart! Your account is ready.\n\nBrowse items near you and start renting.\n\nBest regards,\nThe RentKart Team", name)
	return s.send(to, "Welcome to RentKart", body)
}

func (s *emailService) SendOrderConfirmation(ctx context.Context, to string, order *domain.Order) error {
	body := fmt.Sprintf("Hello %s,\n\nYour order %s has been placed.\n\nItems: %d\nTotal amount: %d (includes tax %d, delivery %d and a refundable deposit of %d)\nPayment method: %s\n\nBest regards,\nThe RentKart Team",
		order.ShippingAddress.FullName, order.Reference, len(order.Lines),
		order.TotalAmount, order.Tax, order.DeliveryFee, order.SecurityDeposit, order.PaymentMethod)
	return s.send(to, fmt.Sprintf("Order %s confirmed", order.Reference), body)
}

func (s *emailService) SendReturnReminder(ctx context.Context, to string, order *domain.Order) error {
	body := fmt.Sprintf("Hello %s,\n\nA rental in your order %s ends today. Please arrange the return to get your deposit back.\n\nBest regards,\nThe RentKart Team",
		order.ShippingAddress.FullName, order.Reference)
	return s.send(to, fmt.Sprintf("Rental return due - order %s", order.Reference), body)
}
