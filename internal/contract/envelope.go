package contract

import "time"

// Envelope wraps every payload returned over HTTP.
type Envelope[T any] struct {
	Success   bool      `json:"success"`
	Data      T         `json:"data"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func OK[T any](data T) Envelope[T] {
	return Envelope[T]{Success: true, Data: data, Timestamp: time.Now().UTC()}
}

func Fail(msg string) Envelope[any] {
	return Envelope[any]{Success: false, Error: msg, Timestamp: time.Now().UTC()}
}
