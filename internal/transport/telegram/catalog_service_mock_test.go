package telegram

import (
	"context"
	"sync"

	"github.com/heartmarshall/pricewatch-bot/internal/domain"
	"github.com/heartmarshall/pricewatch-bot/internal/service/catalog"
)

var _ catalogService = &catalogServiceMock{}

type catalogServiceMock struct {
	LookupFunc func(ctx context.Context, input catalog.LookupInput) (catalog.LookupResult, error)
	RecentFunc func(ctx context.Context, requesterID int64) ([]domain.Product, error)

	calls struct {
		Lookup []struct {
			Ctx   context.Context
			Input catalog.LookupInput
		}
		Recent []struct {
			Ctx         context.Context
			RequesterID int64
		}
	}
	lockLookup sync.RWMutex
	lockRecent sync.RWMutex
}

func (mock *catalogServiceMock) Lookup(ctx context.Context, input catalog.LookupInput) (catalog.LookupResult, error) {
	if mock.LookupFunc == nil {
		panic("catalogServiceMock.LookupFunc: method is nil but catalogService.Lookup was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input catalog.LookupInput
	}{Ctx: ctx, Input: input}
	mock.lockLookup.Lock()
	mock.calls.Lookup = append(mock.calls.Lookup, callInfo)
	mock.lockLookup.Unlock()
	return mock.LookupFunc(ctx, input)
}

func (mock *catalogServiceMock) LookupCalls() []struct {
	Ctx   context.Context
	Input catalog.LookupInput
} {
	mock.lockLookup.RLock()
	calls := mock.calls.Lookup
	mock.lockLookup.RUnlock()
	return calls
}

func (mock *catalogServiceMock) Recent(ctx context.Context, requesterID int64) ([]domain.Product, error) {
	if mock.RecentFunc == nil {
		panic("catalogServiceMock.RecentFunc: method is nil but catalogService.Recent was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		RequesterID int64
	}{Ctx: ctx, RequesterID: requesterID}
	mock.lockRecent.Lock()
	mock.calls.Recent = append(mock.calls.Recent, callInfo)
	mock.lockRecent.Unlock()
	return mock.RecentFunc(ctx, requesterID)
}

func (mock *catalogServiceMock) RecentCalls() []struct {
	Ctx         context.Context
	RequesterID int64
} {
	mock.lockRecent.RLock()
	calls := mock.calls.Recent
	mock.lockRecent.RUnlock()
	return calls
}
