package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"regexp"

	smtpdriver "citamed-service/internal/app/drivers/mailer"
	"citamed-service/internal/pkg/constvars"
	"citamed-service/internal/pkg/dto/requests"
	"citamed-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type Service struct {
	Channel *amqp091.Channel
	Client  *smtpdriver.SMTPClient
	Queue   string
	Limiter *rate.Limiter
	Log     *zap.Logger
}

// NewMailerService publishes emails onto the mailer queue. The limiter
// throttles outbound publishing so a burst of bookings cannot flood the
// broker.
func NewMailerService(client *smtpdriver.SMTPClient, rabbitMQConnection *amqp091.Connection, logger *zap.Logger, queue string, ratePerSecond int) (*Service, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}
	if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return nil, err
	}
	if ratePerSecond <= 0 {
		ratePerSecond = 1
	}
	return &Service{
		Channel: channel,
		Client:  client,
		Queue:   queue,
		Limiter: rate.NewLimiter(rate.Limit(ratePerSecond), ratePerSecond),
		Log:     logger,
	}, nil
}

func (s *Service) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	if !validateEmail(request.To) {
		return exceptions.ErrInputValidation(fmt.Errorf("invalid recipient address %q", request.To))
	}
	if err := s.Limiter.Wait(ctx); err != nil {
		return err
	}

	body, err := json.Marshal(request)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Headers: amqp091.Table{
			"message_type":     "JSON",
			"requeue_strategy": "DROP",
		},
	}
	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.Queue)
	}
	s.Log.Info("mailer service queued email",
		zap.String(constvars.LoggingQueueNameKey, s.Queue),
	)
	return nil
}

// sendDirect delivers one payload through the SMTP client. Used by the queue
// consumer, never by request handlers.
func (s *Service) sendDirect(payload *requests.EmailPayload) error {
	msg := []byte(fmt.Sprintf(constvars.EmailSendBasicEmailSubjectFormat, payload.To, payload.Subject, payload.Body))
	addr := fmt.Sprintf("%s:%d", s.Client.Host, s.Client.Port)
	if err := smtp.SendMail(addr, s.Client.Auth, s.Client.Sender, []string{payload.To}, msg); err != nil {
		return exceptions.ErrSMTPSendEmail(err, s.Client.Host)
	}
	return nil
}

func validateEmail(email string) bool {
	re := regexp.MustCompile(constvars.RegexEmail)
	return re.MatchString(email)
}
