package interfaces

import "context"

// IMailSender abstracts the fulfillment mail transport (SMTP in production).
type IMailSender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
