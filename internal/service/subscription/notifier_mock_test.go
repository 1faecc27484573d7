package subscription

import (
	"context"
	"sync"

	"github.com/heartmarshall/pricewatch-bot/internal/domain"
)

var _ notifier = &notifierMock{}

type notifierMock struct {
	NotifyFunc func(ctx context.Context, userID int64, p domain.Product) error

	calls struct {
		Notify []struct {
			Ctx    context.Context
			UserID int64
			P      domain.Product
		}
	}
	lockNotify sync.RWMutex
}

func (mock *notifierMock) Notify(ctx context.Context, userID int64, p domain.Product) error {
	if mock.NotifyFunc == nil {
		panic("notifierMock.NotifyFunc: method is nil but notifier.Notify was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
		P      domain.Product
	}{Ctx: ctx, UserID: userID, P: p}
	mock.lockNotify.Lock()
	mock.calls.Notify = append(mock.calls.Notify, callInfo)
	mock.lockNotify.Unlock()
	return mock.NotifyFunc(ctx, userID, p)
}

func (mock *notifierMock) NotifyCalls() []struct {
	Ctx    context.Context
	UserID int64
	P      domain.Product
} {
	mock.lockNotify.RLock()
	calls := mock.calls.Notify
	mock.lockNotify.RUnlock()
	return calls
}
