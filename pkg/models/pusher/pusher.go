// Package pusher batches messages and flushes them on an interval, so
// hot request paths never wait on slow sinks like MongoDB.
package pusher

import (
	"sync"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
)

type Pusher[T any] struct {
	buffer       []T
	pushLogic    func(...T) error
	pushInterval time.Duration
	errorHandler func(error)
	lock         sync.Mutex
	running      bool
}

func NewPusher[T any](options ...Option[T]) (newPusher *Pusher[T]) {
	newPusher = &Pusher[T]{
		pushLogic:    func(...T) error { return nil },
		errorHandler: func(err error) { logx.Error(err) },
		pushInterval: time.Second,
	}

	for _, option := range options {
		option(newPusher)
	}

	return
}

// PushAll flushes the buffered messages through the push logic.
func (p *Pusher[T]) PushAll() error {
	p.lock.Lock()
	defer p.lock.Unlock()

	if len(p.buffer) == 0 {
		return nil
	}

	if err := p.pushLogic(p.buffer...); err != nil {
		return err
	}

	p.buffer = nil
	return nil
}

func (p *Pusher[T]) AddMessages(messages ...T) {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.buffer = append(p.buffer, messages...)
}

func (p *Pusher[T]) Start() {
	p.lock.Lock()
	p.running = true
	p.lock.Unlock()

	go func() {
		for {
			p.lock.Lock()
			running := p.running
			p.lock.Unlock()
			if !running {
				return
			}

			timer := time.NewTimer(p.pushInterval)
			if err := p.PushAll(); err != nil {
				p.errorHandler(err)
			}
			<-timer.C
		}
	}()
}

// Stop halts the flush loop after draining whatever is buffered.
func (p *Pusher[T]) Stop() {
	p.lock.Lock()
	p.running = false
	p.lock.Unlock()

	if err := p.PushAll(); err != nil {
		p.errorHandler(err)
	}
}
