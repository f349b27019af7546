package cache

import (
	"context"
	"time"
)

// Noop is a Cache that never stores anything. Every Get is a miss.
// Used when Redis is not configured (sqlite driver, tests).
type Noop struct{}

func NewNoop() Cache { return Noop{} }

func (Noop) Get(context.Context, string, interface{}) (bool, error)        { return false, nil }
func (Noop) Set(context.Context, string, interface{}, time.Duration) error { return nil }
func (Noop) Delete(context.Context, ...string) error                       { return nil }
func (Noop) Ping(context.Context) error                                    { return nil }
