package logger

import (
	"github.com/stretchr/testify/mock"
)

// MockSink is a testify mock implementing Sink and SeverityHook.
type MockSink struct {
	mock.Mock
}

var (
	_ Sink         = (*MockSink)(nil)
	_ SeverityHook = (*MockSink)(nil)
)

// NewMockSink returns a MockSink with no expectations set.
func NewMockSink() *MockSink {
	return &MockSink{}
}

// Name returns the first value of the matching Name expectation.
func (m *MockSink) Name() string {
	args := m.Called()
	return args.String(0)
}

// Write records the call and returns the error of the matching expectation.
func (m *MockSink) Write(line string) error {
	args := m.Called(line)
	return args.Error(0)
}

// OnSeverity records the call.
func (m *MockSink) OnSeverity(level Level) {
	m.Called(level)
}
