package pusher

import "time"

type Option[T any] func(*Pusher[T])

func WithPushLogic[T any](pushLogic func(...T) error) Option[T] {
	return func(p *Pusher[T]) {
		p.pushLogic = pushLogic
	}
}

func WithPushInterval[T any](pushInterval time.Duration) Option[T] {
	return func(p *Pusher[T]) {
		p.pushInterval = pushInterval
	}
}

func WithErrorHandler[T any](errorHandler func(error)) Option[T] {
	return func(p *Pusher[T]) {
		p.errorHandler = errorHandler
	}
}
