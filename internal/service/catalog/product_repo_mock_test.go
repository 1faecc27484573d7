package catalog

import (
	"context"
	"sync"

	"github.com/heartmarshall/pricewatch-bot/internal/domain"
)

var _ productRepo = &productRepoMock{}

type productRepoMock struct {
	UpsertFunc                func(ctx context.Context, p domain.Product) (domain.Product, error)
	ListRecentByRequesterFunc func(ctx context.Context, requesterID int64, limit int) ([]domain.Product, error)

	calls struct {
		Upsert []struct {
			Ctx context.Context
			P   domain.Product
		}
		ListRecentByRequester []struct {
			Ctx         context.Context
			RequesterID int64
			Limit       int
		}
	}
	lockUpsert                sync.RWMutex
	lockListRecentByRequester sync.RWMutex
}

func (mock *productRepoMock) Upsert(ctx context.Context, p domain.Product) (domain.Product, error) {
	if mock.UpsertFunc == nil {
		panic("productRepoMock.UpsertFunc: method is nil but productRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.Product
	}{Ctx: ctx, P: p}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, p)
}

func (mock *productRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	P   domain.Product
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *productRepoMock) ListRecentByRequester(ctx context.Context, requesterID int64, limit int) ([]domain.Product, error) {
	if mock.ListRecentByRequesterFunc == nil {
		panic("productRepoMock.ListRecentByRequesterFunc: method is nil but productRepo.ListRecentByRequester was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		RequesterID int64
		Limit       int
	}{Ctx: ctx, RequesterID: requesterID, Limit: limit}
	mock.lockListRecentByRequester.Lock()
	mock.calls.ListRecentByRequester = append(mock.calls.ListRecentByRequester, callInfo)
	mock.lockListRecentByRequester.Unlock()
	return mock.ListRecentByRequesterFunc(ctx, requesterID, limit)
}

func (mock *productRepoMock) ListRecentByRequesterCalls() []struct {
	Ctx         context.Context
	RequesterID int64
	Limit       int
} {
	mock.lockListRecentByRequester.RLock()
	calls := mock.calls.ListRecentByRequester
	mock.lockListRecentByRequester.RUnlock()
	return calls
}
