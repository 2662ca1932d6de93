// Package goroutine provides utilities for safely launching goroutines with panic recovery.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/cragbase/cragbase/internal/shared/logger"
)

// SafeGo runs fn in a goroutine, logging instead of crashing if it panics.
// The returned channel is closed once fn has returned or panicked.
func SafeGo(log logger.Interface, name string, fn func()) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("goroutine panicked",
					"goroutine", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
			}
		}()
		fn()
	}()
	return done
}
