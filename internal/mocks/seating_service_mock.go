// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/waitlist-service/internal/domain/model"
)

type MockSeatingService struct {
	mock.Mock
}

func (m *MockSeatingService) Plan(parties []model.Party, tables []model.Table) (model.PlanResult, error) {
	args := m.Called(parties, tables)
	return args.Get(0).(model.PlanResult), args.Error(1)
}

func (m *MockSeatingService) Optimize(ctx context.Context, tables []model.Table, apply bool) (model.PlanResult, error) {
	args := m.Called(ctx, tables, apply)
	return args.Get(0).(model.PlanResult), args.Error(1)
}

func (m *MockSeatingService) Tables() []model.Table {
	args := m.Called()
	return args.Get(0).([]model.Table)
}
