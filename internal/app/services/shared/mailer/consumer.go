package mailer

import (
	"context"

	"citamed-service/internal/pkg/constvars"
	"citamed-service/internal/pkg/dto/requests"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// StartConsumer drains the mailer queue and delivers each payload over SMTP.
// Undeliverable messages are logged and dropped; the queue is best-effort by
// contract.
func (s *Service) StartConsumer(ctx context.Context) error {
	deliveries, err := s.Channel.Consume(s.Queue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case delivery, ok := <-deliveries:
				if !ok {
					return
				}
				var payload requests.EmailPayload
				if err := json.Unmarshal(delivery.Body, &payload); err != nil {
					s.Log.Error("mailer consumer cannot decode message",
						zap.String(constvars.LoggingQueueNameKey, s.Queue),
						zap.Error(err),
					)
					delivery.Nack(false, false)
					continue
				}
				if err := s.sendDirect(&payload); err != nil {
					s.Log.Error("mailer consumer delivery failed",
						zap.String(constvars.LoggingQueueNameKey, s.Queue),
						zap.Error(err),
					)
					delivery.Nack(false, false)
					continue
				}
				delivery.Ack(false)
			}
		}
	}()
	return nil
}
