// test/mock/collaborators.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockMailer is a mock implementation of service.Mailer
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendEmail(ctx context.Context, to, subject, body string, isHTML bool, from string) error {
	args := m.Called(ctx, to, subject, body, isHTML, from)
	return args.Error(0)
}

// MockSpreadsheet is a mock implementation of service.Spreadsheet
type MockSpreadsheet struct {
	mock.Mock
}

func (m *MockSpreadsheet) ReadSheet(data []byte) ([]string, [][]string, error) {
	args := m.Called(data)
	header, _ := args.Get(0).([]string)
	rows, _ := args.Get(1).([][]string)
	return header, rows, args.Error(2)
}

func (m *MockSpreadsheet) FormTemplate(fieldNames []string) ([]byte, error) {
	args := m.Called(fieldNames)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

// MockImageCodec is a mock implementation of service.ImageCodec
type MockImageCodec struct {
	mock.Mock
}

func (m *MockImageCodec) Encode(data []byte) ([]byte, int, error) {
	args := m.Called(data)
	encoded, _ := args.Get(0).([]byte)
	return encoded, args.Int(1), args.Error(2)
}

// MockTokenIssuer is a mock implementation of service.TokenIssuer
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(userID int64) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}
