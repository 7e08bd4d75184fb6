// Package pool provides object pooling for go-argv parsing
// Used by argv.Parse to reuse the working token slice between invocations
package pool

import (
	"sync"
)

// Pool provides a generic, type-safe object pool
type Pool[T any] struct {
	pool    sync.Pool
	reset   func(*T) // Optional reset function called before reuse
	maxSize int      // Maximum objects to keep (0 = unlimited)
	count   int64    // Current pool size (approximate)
	mutex   sync.RWMutex
}

// NewPool creates a new generic pool with the given factory function
func NewPool[T any](factory func() *T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return factory()
			},
		},
	}
}

// NewPoolWithReset creates a pool with a reset function called before reuse
func NewPoolWithReset[T any](factory func() *T, reset func(*T)) *Pool[T] {
	p := NewPool(factory)
	p.reset = reset
	return p
}

// Get retrieves an object from the pool or creates a new one
func (p *Pool[T]) Get() *T {
	obj := p.pool.Get().(*T)
	if p.reset != nil {
		p.reset(obj)
	}
	if p.maxSize > 0 {
		p.mutex.Lock()
		if p.count > 0 {
			p.count--
		}
		p.mutex.Unlock()
	}
	return obj
}

// Put returns an object to the pool for reuse
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}

	if p.maxSize > 0 {
		p.mutex.Lock()
		defer p.mutex.Unlock()
		if p.count >= int64(p.maxSize) {
			return
		}
		p.count++
	}

	p.pool.Put(obj)
}

// SetMaxSize sets the maximum number of objects to keep in the pool
func (p *Pool[T]) SetMaxSize(size int) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.maxSize = size
}

// Stats returns approximate pool statistics
func (p *Pool[T]) Stats() (count int64, maxSize int) {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return p.count, p.maxSize
}

// TokenSlicePool pools the working token slices built during a parse.
// Slices larger than maxCap are dropped on Put so one huge argv does not pin
// memory for the life of the process.
type TokenSlicePool struct {
	*Pool[[]string]
	maxCap int
}

// NewTokenSlicePool creates a token slice pool whose fresh slices have defaultCap
func NewTokenSlicePool(defaultCap, maxCap int) *TokenSlicePool {
	return &TokenSlicePool{
		Pool: NewPoolWithReset(
			func() *[]string {
				slice := make([]string, 0, defaultCap)
				return &slice
			},
			func(slice *[]string) {
				*slice = (*slice)[:0]
			},
		),
		maxCap: maxCap,
	}
}

// Put clears the slice and returns it to the pool
func (tp *TokenSlicePool) Put(slice *[]string) {
	if slice == nil || cap(*slice) > tp.maxCap {
		return
	}
	// Drop string references so the pooled slice does not keep argv alive
	clear((*slice)[:cap(*slice)])
	*slice = (*slice)[:0]
	tp.Pool.Put(slice)
}

// GlobalTokenSlicePool is shared by every argv.Parse call
var GlobalTokenSlicePool = NewTokenSlicePool(32, 1024)

// GetTokens retrieves an empty token slice
func GetTokens() *[]string {
	return GlobalTokenSlicePool.Get()
}

// PutTokens returns a token slice to the global pool
func PutTokens(slice *[]string) {
	GlobalTokenSlicePool.Put(slice)
}
