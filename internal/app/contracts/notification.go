package contracts

import (
	"context"

	"citamed-service/internal/pkg/dto/requests"
)

type MailerService interface {
	SendEmail(ctx context.Context, payload *requests.EmailPayload) error
}

type WhatsAppService interface {
	SendMessage(ctx context.Context, message *requests.WhatsAppMessage) error
}
