package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) SendBookingRequestNotification(ctx context.Context, ownerEmail, bookerName, itemName string) error {
	subject := fmt.Sprintf("New booking request for %s", itemName)
	body := fmt.Sprintf("Hello,\n\n%s requested to book your item %q.\n\nLog in to approve or reject the request.\n\nBest regards,\nThe GearShare Team", bookerName, itemName)
	return s.send(ownerEmail, subject, body)
}

func (s *emailService) SendBookingDecisionNotification(ctx context.Context, bookerEmail, itemName string, approved bool) error {
	decision := "rejected"
	if approved {
		decision = "approved"
	}
	subject := fmt.Sprintf("Your booking request was %s", decision)
	body := fmt.Sprintf("Hello,\n\nYour booking request for %q was %s by the owner.\n\nBest regards,\nThe GearShare Team", itemName, decision)
	return s.send(bookerEmail, subject, body)
}

func (s *emailService) SendPendingApprovalReminder(ctx context.Context, ownerEmail string, pendingCount int) error {
	subject := "You have booking requests waiting for a decision"
	body := fmt.Sprintf("Hello,\n\nYou have %d booking request(s) waiting for your approval.\n\nBest regards,\nThe GearShare Team", pendingCount)
	return s.send(ownerEmail, subject, body)
}

func (s *emailService) send(to, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
