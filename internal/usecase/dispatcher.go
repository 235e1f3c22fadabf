package usecase

import (
	"log"
	"sync"
)

// Dispatcher runs best-effort side effects off the request path. Each task
// gets its own error boundary: a failure (or panic) is logged and never
// reaches the caller, so the primary write it hangs off can't be failed by it.
type Dispatcher struct {
	wg sync.WaitGroup
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

func (d *Dispatcher) Go(name string, fn func() error) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				log.Printf("side effect %s panicked: %v", name, r)
			}
		}()
		if err := fn(); err != nil {
			log.Printf("side effect %s failed: %v", name, err)
		}
	}()
}

// Wait blocks until all dispatched side effects finish. Used on shutdown and
// in tests; request handlers never call it.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
