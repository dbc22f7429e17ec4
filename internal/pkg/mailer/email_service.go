package mailer

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendDeliveryNotice(toEmail, toName, number string, amount int64, expiresAt *time.Time) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	studioName  string
}

func NewEmailService(host string, port int, username, password, senderEmail, studioName string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		studioName:  studioName,
	}
}

func (s *emailService) SendDeliveryNotice(toEmail, toName, number string, amount int64, expiresAt *time.Time) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Your %s Gift Card", s.studioName))

	expiryLine := ""
	if expiresAt != nil {
		expiryLine = fmt.Sprintf("<p>Valid until <strong>%s</strong>.</p>", expiresAt.Format("January 2, 2006"))
	}

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Hi %s,</h2>
			<p>Your gift card from %s is on its way!</p>
			<p>Card number:</p>
			<h1 style="letter-spacing: 5px;">%s</h1>
			<p>Value: <strong>%d</strong></p>
			%s
			<p>Bring the number with you when you book your session.</p>
		</div>
	`, toName, s.studioName, number, amount, expiryLine)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send delivery notice to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Delivery notice sent to %s\n", toEmail)
	return nil
}
