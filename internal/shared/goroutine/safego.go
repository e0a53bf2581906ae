// Package goroutine launches goroutines that cannot take the process down.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"ispdesk/internal/shared/logger"
)

// Go runs fn in a new goroutine. The returned channel receives fn's error, or
// an error describing a recovered panic, and is closed when fn is done.
func Go(log logger.Interface, name string, fn func() error) <-chan error {
	errc := make(chan error, 1)

	go func() {
		defer close(errc)
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("goroutine panicked",
					"goroutine", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
				errc <- fmt.Errorf("goroutine %s panicked: %v", name, r)
			}
		}()

		if err := fn(); err != nil {
			errc <- err
		}
	}()

	return errc
}
