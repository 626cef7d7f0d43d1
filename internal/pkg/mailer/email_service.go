package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendWelcome(toEmail, agencyName string) error
	SendInvoice(toEmail, clientName, invoiceNumber string, amount float64, currency, paymentLink string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendWelcome(toEmail, agencyName string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Welcome to Triponic")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Welcome aboard, %s!</h2>
			<p>Your agency workspace is ready. Log in to start managing clients, leads and itineraries.</p>
			<p>Tono, your AI travel assistant, is waiting in the dashboard.</p>
		</div>
	`, agencyName)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send welcome to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Welcome sent to %s\n", toEmail)
	return nil
}

func (s *emailService) SendInvoice(toEmail, clientName, invoiceNumber string, amount float64, currency, paymentLink string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Invoice %s", invoiceNumber))

	linkBlock := ""
	if paymentLink != "" {
		linkBlock = fmt.Sprintf(`<a href="%s" style="background-color: #007BFF; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Pay Now</a>`, paymentLink)
	}

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Invoice %s</h2>
			<p>Dear %s,</p>
			<p>Amount due: <strong>%.2f %s</strong></p>
			%s
			<p>Thank you for travelling with us.</p>
		</div>
	`, invoiceNumber, clientName, amount, currency, linkBlock)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send invoice %s to %s: %v\n", invoiceNumber, toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Invoice %s sent to %s\n", invoiceNumber, toEmail)
	return nil
}
