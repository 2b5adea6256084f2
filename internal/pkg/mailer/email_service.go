package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendCalendarSummary(toEmail string, totalWeeks int, harvestDate string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
	configured  bool
}

// NewEmailService builds the SMTP mailer. With an empty host the service is
// a no-op: calendar generation must not depend on email being configured.
func NewEmailService(host string, port int, username, password, senderName string) IEmailService {
	if host == "" {
		return &emailService{configured: false}
	}
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: username,
		senderName:  senderName,
		configured:  true,
	}
}

func (s *emailService) SendCalendarSummary(toEmail string, totalWeeks int, harvestDate string) error {
	if !s.configured {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Your grow calendar is ready")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Your grow calendar is ready 🌱</h2>
			<p>We generated a <strong>%d-week</strong> plan for your setup.</p>
			<p>Estimated harvest date: <strong>%s</strong></p>
			<p>Open the app to see your week-by-week tasks and environment targets.</p>
		</div>
	`, totalWeeks, harvestDate)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send calendar summary to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Calendar summary sent to %s\n", toEmail)
	return nil
}
