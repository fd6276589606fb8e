package port

import "context"

// EmailSender defines the contract for sending notification emails.
type EmailSender interface {
	SendThresholdAlert(ctx context.Context, toEmail, toName, message string) error
	SendFindingNotification(ctx context.Context, toEmail, toName, findingType string, potentialAmount float64) error
}
