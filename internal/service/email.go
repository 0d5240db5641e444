package service

import (
	"context"
	"fmt"
	"time"

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

func (s *emailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email via gomail: %w", err)
	}
	return nil
}

func (s *emailService) SendRentalConfirmation(ctx context.Context, email, name, model string, expectedEnd time.Time, totalCents int64) error {
	body := fmt.Sprintf(
		"Hello %s,\n\nYour rental of a %s is confirmed. The contractual return date is %s and the base price is %.2f.\n\nBest regards,\nThe Motorent Team",
		name, model, expectedEnd.Format("2006-01-02"), float64(totalCents)/100)
	return s.send(email, "Rental Confirmed", body)
}

func (s *emailService) SendRentalSettled(ctx context.Context, email, name, model string, totalCents int64) error {
	body := fmt.Sprintf(
		"Hello %s,\n\nYour rental of a %s is settled. The total charged is %.2f.\n\nBest regards,\nThe Motorent Team",
		name, model, float64(totalCents)/100)
	return s.send(email, "Rental Settled", body)
}
