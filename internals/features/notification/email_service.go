package notification

import (
	"context"
	"fmt"
	"io"
	"log"

	"gopkg.in/gomail.v2"

	"abhm_backend/internals/configs"
	"abhm_backend/internals/features/idcard"
	"abhm_backend/internals/features/membership/model"
)

// Dialer sends one composed message. gomail.Dialer satisfies this; tests
// swap in a recorder.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// EmailService sends the membership decision mails. All sends are best
// effort: failures are logged, never returned to the admin flow as fatal.
type EmailService struct {
	dialer   Dialer
	pipeline *idcard.Pipeline
	sender   string
}

func NewEmailService(pipeline *idcard.Pipeline) *EmailService {
	dialer := gomail.NewDialer(configs.SMTPHost, configs.SMTPPort, configs.SMTPUser, configs.SMTPPass)
	return &EmailService{
		dialer:   dialer,
		pipeline: pipeline,
		sender:   fmt.Sprintf("%s <%s>", configs.SMTPSenderName, configs.SMTPSenderEmail),
	}
}

// NewEmailServiceWithDialer is used by tests.
func NewEmailServiceWithDialer(dialer Dialer, pipeline *idcard.Pipeline, sender string) *EmailService {
	return &EmailService{dialer: dialer, pipeline: pipeline, sender: sender}
}

// SendApproval mails the approval notice with the ID card PDF attached. If the
// PDF cannot be rendered the mail still goes out without the attachment.
func (s *EmailService) SendApproval(ctx context.Context, member *model.MemberModel) error {
	if member.Email == "" {
		log.Printf("[Notification] member %s has no email, skipping approval mail", member.ID)
		return nil
	}

	memberID := ""
	if member.MemberID != nil {
		memberID = *member.MemberID
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.sender)
	m.SetHeader("To", member.Email)
	m.SetHeader("Subject", "Membership Approved - Akhil Bharat Hindu Mahasabha")
	m.SetBody("text/html", approvalBody(member.FullName(), memberID))

	pdf, err := s.renderCard(ctx, member)
	if err != nil {
		log.Printf("[Notification] ID card PDF failed for %s, sending without attachment: %v", member.ID, err)
	} else {
		filename := fmt.Sprintf("%s_ID_Card.pdf", memberID)
		m.Attach(filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, werr := w.Write(pdf)
			return werr
		}))
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send approval mail: %w", err)
	}
	log.Printf("[Notification] approval mail sent to %s", member.Email)
	return nil
}

func (s *EmailService) renderCard(ctx context.Context, member *model.MemberModel) ([]byte, error) {
	if s.pipeline == nil {
		return nil, fmt.Errorf("no card pipeline configured")
	}
	return s.pipeline.PDF(ctx, member)
}

// SendRejection mails the rejection notice with the reason.
func (s *EmailService) SendRejection(ctx context.Context, member *model.MemberModel, reason string) error {
	if member.Email == "" {
		log.Printf("[Notification] member %s has no email, skipping rejection mail", member.ID)
		return nil
	}
	if reason == "" {
		reason = "Document verification failed or incomplete details."
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.sender)
	m.SetHeader("To", member.Email)
	m.SetHeader("Subject", "Membership Application Update - Akhil Bharat Hindu Mahasabha")
	m.SetBody("text/html", rejectionBody(member.FullName(), reason))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send rejection mail: %w", err)
	}
	log.Printf("[Notification] rejection mail sent to %s", member.Email)
	return nil
}
