package mock_otp

import (
	"github.com/stretchr/testify/mock"
)

type Generator struct {
	mock.Mock
}

func (m *Generator) RandomCode(length int) string {
	args := m.Called(length)

	return args.String(0)
}
