package noop

import (
	"context"
	"log"

	"taxara/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs instead of sending.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendThresholdAlert(_ context.Context, toEmail, toName, message string) error {
	log.Printf("[NOOP EMAIL] Threshold alert for %s (%s): %s", toName, toEmail, message)
	return nil
}

func (s *noopSender) SendFindingNotification(_ context.Context, toEmail, toName, findingType string, potentialAmount float64) error {
	log.Printf("[NOOP EMAIL] Finding notification for %s (%s): %s worth %.2f", toName, toEmail, findingType, potentialAmount)
	return nil
}
