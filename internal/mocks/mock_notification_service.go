package mocks

import (
	"sync"

	"github.com/ashutosh-sx/Emergo/domain"
)

// SentMessage records a delivery made through the mock
type SentMessage struct {
	To      string
	Subject string
	Body    string
}

// MockNotificationService implements domain.NotificationService interface for
// testing. Deliveries are recorded so tests can assert on them.
type MockNotificationService struct {
	SendSMSFunc   func(to, message string) error
	SendEmailFunc func(to, subject, body string) error

	mu     sync.Mutex
	SMS    []SentMessage
	Emails []SentMessage
}

// NewMockNotificationService creates a new MockNotificationService with default behaviors
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

// SendSMS records and optionally delegates an SMS delivery
func (m *MockNotificationService) SendSMS(to, message string) error {
	m.mu.Lock()
	m.SMS = append(m.SMS, SentMessage{To: to, Body: message})
	m.mu.Unlock()
	if m.SendSMSFunc != nil {
		return m.SendSMSFunc(to, message)
	}
	return nil
}

// SendEmail records and optionally delegates an email delivery
func (m *MockNotificationService) SendEmail(to, subject, body string) error {
	m.mu.Lock()
	m.Emails = append(m.Emails, SentMessage{To: to, Subject: subject, Body: body})
	m.mu.Unlock()
	if m.SendEmailFunc != nil {
		return m.SendEmailFunc(to, subject, body)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.NotificationService = (*MockNotificationService)(nil)
