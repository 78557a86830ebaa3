package repository

import (
	"context"
	"fmt"

	"foster/domain"

	"gopkg.in/gomail.v2"
)

type mailRepository struct {
	dialer        *gomail.Dialer
	senderEmail   string
	photoTeamAddr string
}

func NewMailRepository(dialer *gomail.Dialer, senderEmail, photoTeamAddr string) domain.MailRepo {
	return &mailRepository{
		dialer:        dialer,
		senderEmail:   senderEmail,
		photoTeamAddr: photoTeamAddr,
	}
}

func (mr *mailRepository) SendPhotoRequest(ctx context.Context, recipientEmail, fosterName, petName string) error {
	subject := fmt.Sprintf("Photo Request for %s", petName)
	body := fmt.Sprintf(`Hi %s,

Thanks for completing the foster interview! You mentioned you don't have any photos of %s.

Please reply to this email to schedule a photography shoot with the team at your convenience.

Thank you!
Angels Among Us Pet Rescue`, fosterName, petName)

	return mr.send(ctx, recipientEmail, subject, body)
}

func (mr *mailRepository) SendPhotographyNotice(ctx context.Context, foster *domain.Foster) error {
	subject := fmt.Sprintf("Photography Needed for %s", foster.PetName)
	body := fmt.Sprintf(`Hello Photography Team,

A foster has completed an interview and indicated they do not have photos of their pet.

Foster Info:
• Name: %s
• Email: %s
• Phone: %s
• Foster ID: %d
• Pet Name: %s
• Preferred Contact Time: %s

Please reach out to schedule a photography session!

Thank you,
Angels Among Us Pet Rescue`, foster.Name, foster.Email, foster.PhoneNumber, foster.ID, foster.PetName, foster.PreferredContactTime)

	return mr.send(ctx, mr.photoTeamAddr, subject, body)
}

func (mr *mailRepository) SendTestEmail(ctx context.Context) error {
	body := "Hi there! This is a test email sent from the backend. If you received this, your setup is working!"
	return mr.send(ctx, mr.senderEmail, "Test Email from AAUPR Backend", body)
}

// send delivers one message, honoring context cancellation around the
// blocking SMTP dial.
func (mr *mailRepository) send(ctx context.Context, to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", mr.senderEmail)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	done := make(chan error, 1)
	go func() {
		done <- mr.dialer.DialAndSend(msg)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send email: %w", err)
		}
		return nil
	}
}
