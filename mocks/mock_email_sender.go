package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendThresholdAlert(ctx context.Context, toEmail, toName, message string) error {
	args := m.Called(ctx, toEmail, toName, message)
	return args.Error(0)
}

func (m *MockEmailSender) SendFindingNotification(ctx context.Context, toEmail, toName, findingType string, potentialAmount float64) error {
	args := m.Called(ctx, toEmail, toName, findingType, potentialAmount)
	return args.Error(0)
}
