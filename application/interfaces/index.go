package interfaces

import (
	"net/http"
)

// ApplicationContext is the transport agnostic request context passed from
// the routing layer into controllers.
type ApplicationContext[T any] struct {
	Ctx        interface{}
	Body       *T
	Keys       map[string]any
	Header     http.Header
	DeviceID   string
	DeviceName string
	UserAgent  string
}

func (ac *ApplicationContext[T]) SetContextData(key string, value any) {
	if ac.Keys == nil {
		ac.Keys = map[string]any{}
	}
	ac.Keys[key] = value
}

func (ac *ApplicationContext[T]) GetContextData(key string) any {
	if ac.Keys == nil {
		return nil
	}
	return ac.Keys[key]
}

func (ac *ApplicationContext[T]) GetStringContextData(key string) string {
	value, ok := ac.GetContextData(key).(string)
	if !ok {
		return ""
	}
	return value
}

func (ac *ApplicationContext[T]) GetHeader(key string) string {
	if ac.Header == nil {
		return ""
	}
	return ac.Header.Get(key)
}
