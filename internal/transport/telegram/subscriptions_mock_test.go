package telegram

import "sync"

var _ subscriptions = &subscriptionsMock{}

type subscriptionsMock struct {
	SubscribeFunc   func(userID int64, code string) error
	UnsubscribeFunc func(userID int64) bool

	calls struct {
		Subscribe []struct {
			UserID int64
			Code   string
		}
		Unsubscribe []struct {
			UserID int64
		}
	}
	lockSubscribe   sync.RWMutex
	lockUnsubscribe sync.RWMutex
}

func (mock *subscriptionsMock) Subscribe(userID int64, code string) error {
	if mock.SubscribeFunc == nil {
		panic("subscriptionsMock.SubscribeFunc: method is nil but subscriptions.Subscribe was just called")
	}
	callInfo := struct {
		UserID int64
		Code   string
	}{UserID: userID, Code: code}
	mock.lockSubscribe.Lock()
	mock.calls.Subscribe = append(mock.calls.Subscribe, callInfo)
	mock.lockSubscribe.Unlock()
	return mock.SubscribeFunc(userID, code)
}

func (mock *subscriptionsMock) SubscribeCalls() []struct {
	UserID int64
	Code   string
} {
	mock.lockSubscribe.RLock()
	calls := mock.calls.Subscribe
	mock.lockSubscribe.RUnlock()
	return calls
}

func (mock *subscriptionsMock) Unsubscribe(userID int64) bool {
	if mock.UnsubscribeFunc == nil {
		panic("subscriptionsMock.UnsubscribeFunc: method is nil but subscriptions.Unsubscribe was just called")
	}
	callInfo := struct {
		UserID int64
	}{UserID: userID}
	mock.lockUnsubscribe.Lock()
	mock.calls.Unsubscribe = append(mock.calls.Unsubscribe, callInfo)
	mock.lockUnsubscribe.Unlock()
	return mock.UnsubscribeFunc(userID)
}

func (mock *subscriptionsMock) UnsubscribeCalls() []struct {
	UserID int64
} {
	mock.lockUnsubscribe.RLock()
	calls := mock.calls.Unsubscribe
	mock.lockUnsubscribe.RUnlock()
	return calls
}
