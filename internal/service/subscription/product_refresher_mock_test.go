package subscription

import (
	"context"
	"sync"

	"github.com/heartmarshall/pricewatch-bot/internal/domain"
)

var _ productRefresher = &productRefresherMock{}

type productRefresherMock struct {
	RefreshFunc func(ctx context.Context, code string) (domain.Product, error)

	calls struct {
		Refresh []struct {
			Ctx  context.Context
			Code string
		}
	}
	lockRefresh sync.RWMutex
}

func (mock *productRefresherMock) Refresh(ctx context.Context, code string) (domain.Product, error) {
	if mock.RefreshFunc == nil {
		panic("productRefresherMock.RefreshFunc: method is nil but productRefresher.Refresh was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Code string
	}{Ctx: ctx, Code: code}
	mock.lockRefresh.Lock()
	mock.calls.Refresh = append(mock.calls.Refresh, callInfo)
	mock.lockRefresh.Unlock()
	return mock.RefreshFunc(ctx, code)
}

func (mock *productRefresherMock) RefreshCalls() []struct {
	Ctx  context.Context
	Code string
} {
	mock.lockRefresh.RLock()
	calls := mock.calls.Refresh
	mock.lockRefresh.RUnlock()
	return calls
}
