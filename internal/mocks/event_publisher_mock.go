// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/waitlist-service/internal/domain/model"
)

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(event model.ChangeEvent) {
	m.Called(event)
}
