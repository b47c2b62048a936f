package utils

import (
	"fmt"
	"log"

	"lms/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail sends an HTML email through SendGrid
func SendEmail(toName, toEmail, subject, htmlBody string) error {
	if config.AppConfig.SendGridKey == "" {
		log.Printf("Email to %s skipped: SendGrid not configured", toEmail)
		return nil
	}

	from := mail.NewEmail("LMS", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("Failed to send email to %s, response code: %d", toEmail, resp.StatusCode)
		return fmt.Errorf("failed to send email, code: %d", resp.StatusCode)
	}

	return nil
}

// SendGradeEmail notifies a student of their assessment result
func SendGradeEmail(toName, toEmail, assessmentTitle string, earned, maxScore, percentage int) error {
	subject := fmt.Sprintf("Your result for %s", assessmentTitle)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your submission for <b>%s</b> has been graded: <b>%d/%d (%d%%)</b>.</p>",
		toName, assessmentTitle, earned, maxScore, percentage,
	)
	return SendEmail(toName, toEmail, subject, body)
}
