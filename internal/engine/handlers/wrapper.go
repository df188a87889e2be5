package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/JMS55/roguelike-sub000/pkg/api"
)

// ErrBadPayload — данные команды не разобрались или не прошли проверку.
var ErrBadPayload = errors.New("bad payload")

// TypedHandlerFunc - это "чистый" хендлер, который работает с готовой структурой T
type TypedHandlerFunc[T any] func(ctx Context, payload T) (Result, error)

// EmptyHandlerFunc - хендлер, которому НЕ нужны данные (ATTACK, INTERACT, PASS)
type EmptyHandlerFunc func(ctx Context) (Result, error)

// WithPayload берет "чистый" хендлер и превращает его в стандартный HandlerFunc.
// Распаковка строгая: неизвестные поля — ошибка, как и пустые данные.
func WithPayload[T any](handler TypedHandlerFunc[T]) HandlerFunc {
	return func(ctx Context, raw json.RawMessage) (Result, error) {
		if isEmpty(raw) {
			return EmptyResult(), fmt.Errorf("%w: payload is required", ErrBadPayload)
		}

		var payload T
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&payload); err != nil {
			return EmptyResult(), fmt.Errorf("%w: %w", ErrBadPayload, err)
		}

		if v, ok := any(payload).(api.Validator); ok {
			if err := v.Validate(); err != nil {
				return EmptyResult(), fmt.Errorf("%w: %w", ErrBadPayload, err)
			}
		}

		return handler(ctx, payload)
	}
}

// WithEmptyPayload - обертка для команд без данных. Допускается только
// пустое тело, null или {}.
func WithEmptyPayload(handler EmptyHandlerFunc) HandlerFunc {
	return func(ctx Context, raw json.RawMessage) (Result, error) {
		if !isEmpty(raw) {
			return EmptyResult(), fmt.Errorf("%w: command takes no payload", ErrBadPayload)
		}
		return handler(ctx)
	}
}

func isEmpty(raw json.RawMessage) bool {
	s := bytes.TrimSpace(raw)
	return len(s) == 0 || bytes.Equal(s, []byte("null")) || bytes.Equal(s, []byte("{}"))
}
