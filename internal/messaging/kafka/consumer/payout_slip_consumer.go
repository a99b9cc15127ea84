package consumer

import (
	"context"
	"encoding/json"

	"go-payroll/internal/events"
	"go-payroll/internal/payout"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumePayoutSlipRequested pre-renders slip PDFs for freshly generated
// payouts. Rendering is idempotent, so an at-least-once redelivery just
// returns the stored URL.
func ConsumePayoutSlipRequested(
	ctx context.Context,
	reader *kafkago.Reader,
	payoutService payout.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payout_slip")
	log.Info("payout slip consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payout slip consumer stopped")
				return
			}
			log.Error("fetch payout slip message failed", zap.Error(err))
			continue
		}

		var event events.PayoutSlipRequestedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payout slip event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		_, err = payoutService.GetSlip(ctx, event.PayoutID)
		if err != nil {
			log.Error("render payout slip failed",
				zap.String("payout_id", event.PayoutID),
				zap.String("period", event.Period),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payout slip message failed", zap.Error(err))
			continue
		}

		log.Info("payout slip rendered",
			zap.String("payout_id", event.PayoutID),
			zap.String("period", event.Period),
		)
	}
}
