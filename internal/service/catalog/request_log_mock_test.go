package catalog

import (
	"context"
	"sync"

	"github.com/heartmarshall/pricewatch-bot/internal/domain"
)

var _ requestLog = &requestLogMock{}

type requestLogMock struct {
	AppendFunc func(ctx context.Context, rec domain.RequestRecord) error

	calls struct {
		Append []struct {
			Ctx context.Context
			Rec domain.RequestRecord
		}
	}
	lockAppend sync.RWMutex
}

func (mock *requestLogMock) Append(ctx context.Context, rec domain.RequestRecord) error {
	if mock.AppendFunc == nil {
		panic("requestLogMock.AppendFunc: method is nil but requestLog.Append was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec domain.RequestRecord
	}{Ctx: ctx, Rec: rec}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, rec)
}

func (mock *requestLogMock) AppendCalls() []struct {
	Ctx context.Context
	Rec domain.RequestRecord
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}
