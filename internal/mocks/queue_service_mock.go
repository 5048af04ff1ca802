// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/waitlist-service/internal/domain/model"
)

type MockQueueService struct {
	mock.Mock
}

func (m *MockQueueService) Join(ctx context.Context, name string, partySize int, phone *string) (*model.Entry, error) {
	args := m.Called(ctx, name, partySize, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Entry), args.Error(1)
}

func (m *MockQueueService) List(ctx context.Context, filter model.EntryFilter) ([]model.Entry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Entry), args.Error(1)
}

func (m *MockQueueService) Get(ctx context.Context, id int64) (*model.Entry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Entry), args.Error(1)
}

func (m *MockQueueService) UpdateStatus(ctx context.Context, id int64, status model.Status) (*model.Entry, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Entry), args.Error(1)
}

func (m *MockQueueService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQueueService) WaitingParties(ctx context.Context) ([]model.Party, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Party), args.Error(1)
}

func (m *MockQueueService) ApplyPlan(ctx context.Context, plan model.PlanResult) ([]model.Entry, error) {
	args := m.Called(ctx, plan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Entry), args.Error(1)
}
