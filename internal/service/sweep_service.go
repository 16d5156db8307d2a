package service

import (
	"context"
	"fmt"
	"time"

	"github.com/kbryant/sendlater/internal/notifier"
	"github.com/kbryant/sendlater/internal/receipt"
	"github.com/kbryant/sendlater/internal/repository"
	"go.uber.org/zap"
)

// cutoff carries a trailing Z while stored send_time values do not; for
// this fixed zero-padded layout the lexical comparison still orders
// chronologically, and a bare timestamp sorts before the same second
// with the suffix.
const cutoffLayout = "2006-01-02T15:04:05Z"

// SweepReport counts the outcome of one sweep pass.
type SweepReport struct {
	Matched int `json:"matched"`
	Sent    int `json:"sent"`
	Failed  int `json:"failed"`
}

// SweepService delivers due, unsent messages. Each message is its own
// send-then-mark unit: only an individually successful send flips the
// sent flag, so a transport failure leaves that message (and only that
// message) for the next pass.
//
// Due selection is date-partitioned: a pass only sees messages whose
// send_year_month_day equals the current UTC date. A message missed on
// its calendar day is never revisited once the day rolls over.
type SweepService struct {
	messageRepo *repository.MessageRepository
	notifier    notifier.Notifier
	receipts    *receipt.Store
	logger      *zap.Logger

	now func() time.Time
}

func NewSweepService(messageRepo *repository.MessageRepository, n notifier.Notifier, receipts *receipt.Store, logger *zap.Logger) *SweepService {
	return &SweepService{
		messageRepo: messageRepo,
		notifier:    n,
		receipts:    receipts,
		logger:      logger,
		now:         time.Now,
	}
}

// Run executes one sweep pass. The returned error is non-nil only when
// the due-message query itself fails; individual send failures are
// logged and counted.
func (s *SweepService) Run(ctx context.Context) (SweepReport, error) {
	now := s.now().UTC()
	day := now.Format(DayLayout)
	cutoff := now.Format(cutoffLayout)

	messages, err := s.messageRepo.ListDueUnsent(day, cutoff)
	if err != nil {
		s.logger.Error("due message query failed",
			zap.String("day", day),
			zap.String("cutoff", cutoff),
			zap.Error(err),
		)
		return SweepReport{}, err
	}

	report := SweepReport{Matched: len(messages)}

	for _, msg := range messages {
		body := fmt.Sprintf("%s -%s", msg.Message, msg.DisplayName)

		rcpt, err := s.notifier.Send(ctx, msg.OutgoingPhone, body)
		if err != nil {
			s.logger.Warn("send failed, message left unsent",
				zap.String("message_id", msg.ID),
				zap.String("owner", msg.Owner),
				zap.Error(err),
			)
			report.Failed++
			continue
		}

		if err := s.messageRepo.MarkSent(msg.ID); err != nil {
			// The send went out but the flag did not stick; the next
			// pass will resend this one message.
			s.logger.Error("failed to mark message sent",
				zap.String("message_id", msg.ID),
				zap.Error(err),
			)
			report.Failed++
			continue
		}
		report.Sent++

		if s.receipts != nil {
			if err := s.receipts.Record(ctx, msg.ID, rcpt); err != nil {
				s.logger.Warn("failed to store delivery receipt",
					zap.String("message_id", msg.ID),
					zap.Error(err),
				)
			}
		}
	}

	if report.Matched > 0 {
		s.logger.Info("sweep pass finished",
			zap.Int("matched", report.Matched),
			zap.Int("sent", report.Sent),
			zap.Int("failed", report.Failed),
		)
	}

	return report, nil
}
