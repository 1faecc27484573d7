package telegram

import (
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var _ botAPI = &botAPIMock{}

type botAPIMock struct {
	GetUpdatesChanFunc       func(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdatesFunc func()
	SendFunc                 func(c tgbotapi.Chattable) (tgbotapi.Message, error)
	RequestFunc              func(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)

	calls struct {
		GetUpdatesChan []struct {
			Config tgbotapi.UpdateConfig
		}
		StopReceivingUpdates []struct{}
		Send                 []struct {
			C tgbotapi.Chattable
		}
		Request []struct {
			C tgbotapi.Chattable
		}
	}
	lockGetUpdatesChan       sync.RWMutex
	lockStopReceivingUpdates sync.RWMutex
	lockSend                 sync.RWMutex
	lockRequest              sync.RWMutex
}

func (mock *botAPIMock) GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	if mock.GetUpdatesChanFunc == nil {
		panic("botAPIMock.GetUpdatesChanFunc: method is nil but botAPI.GetUpdatesChan was just called")
	}
	callInfo := struct {
		Config tgbotapi.UpdateConfig
	}{Config: config}
	mock.lockGetUpdatesChan.Lock()
	mock.calls.GetUpdatesChan = append(mock.calls.GetUpdatesChan, callInfo)
	mock.lockGetUpdatesChan.Unlock()
	return mock.GetUpdatesChanFunc(config)
}

func (mock *botAPIMock) GetUpdatesChanCalls() []struct {
	Config tgbotapi.UpdateConfig
} {
	mock.lockGetUpdatesChan.RLock()
	calls := mock.calls.GetUpdatesChan
	mock.lockGetUpdatesChan.RUnlock()
	return calls
}

func (mock *botAPIMock) StopReceivingUpdates() {
	if mock.StopReceivingUpdatesFunc == nil {
		panic("botAPIMock.StopReceivingUpdatesFunc: method is nil but botAPI.StopReceivingUpdates was just called")
	}
	mock.lockStopReceivingUpdates.Lock()
	mock.calls.StopReceivingUpdates = append(mock.calls.StopReceivingUpdates, struct{}{})
	mock.lockStopReceivingUpdates.Unlock()
	mock.StopReceivingUpdatesFunc()
}

func (mock *botAPIMock) StopReceivingUpdatesCalls() []struct{} {
	mock.lockStopReceivingUpdates.RLock()
	calls := mock.calls.StopReceivingUpdates
	mock.lockStopReceivingUpdates.RUnlock()
	return calls
}

func (mock *botAPIMock) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if mock.SendFunc == nil {
		panic("botAPIMock.SendFunc: method is nil but botAPI.Send was just called")
	}
	callInfo := struct {
		C tgbotapi.Chattable
	}{C: c}
	mock.lockSend.Lock()
	mock.calls.Send = append(mock.calls.Send, callInfo)
	mock.lockSend.Unlock()
	return mock.SendFunc(c)
}

func (mock *botAPIMock) SendCalls() []struct {
	C tgbotapi.Chattable
} {
	mock.lockSend.RLock()
	calls := mock.calls.Send
	mock.lockSend.RUnlock()
	return calls
}

func (mock *botAPIMock) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	if mock.RequestFunc == nil {
		panic("botAPIMock.RequestFunc: method is nil but botAPI.Request was just called")
	}
	callInfo := struct {
		C tgbotapi.Chattable
	}{C: c}
	mock.lockRequest.Lock()
	mock.calls.Request = append(mock.calls.Request, callInfo)
	mock.lockRequest.Unlock()
	return mock.RequestFunc(c)
}

func (mock *botAPIMock) RequestCalls() []struct {
	C tgbotapi.Chattable
} {
	mock.lockRequest.RLock()
	calls := mock.calls.Request
	mock.lockRequest.RUnlock()
	return calls
}
