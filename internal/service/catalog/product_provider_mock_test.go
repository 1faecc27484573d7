package catalog

import (
	"context"
	"sync"

	"github.com/heartmarshall/pricewatch-bot/internal/domain"
)

var _ productProvider = &productProviderMock{}

type productProviderMock struct {
	FetchProductFunc func(ctx context.Context, code string) (domain.Product, error)

	calls struct {
		FetchProduct []struct {
			Ctx  context.Context
			Code string
		}
	}
	lockFetchProduct sync.RWMutex
}

func (mock *productProviderMock) FetchProduct(ctx context.Context, code string) (domain.Product, error) {
	if mock.FetchProductFunc == nil {
		panic("productProviderMock.FetchProductFunc: method is nil but productProvider.FetchProduct was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Code string
	}{Ctx: ctx, Code: code}
	mock.lockFetchProduct.Lock()
	mock.calls.FetchProduct = append(mock.calls.FetchProduct, callInfo)
	mock.lockFetchProduct.Unlock()
	return mock.FetchProductFunc(ctx, code)
}

func (mock *productProviderMock) FetchProductCalls() []struct {
	Ctx  context.Context
	Code string
} {
	mock.lockFetchProduct.RLock()
	calls := mock.calls.FetchProduct
	mock.lockFetchProduct.RUnlock()
	return calls
}
