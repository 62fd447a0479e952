package acquisition

import (
	"context"
	"errors"
)

// With starts s, runs fn and stops s on every exit path, including a panic
// in fn (the panic is re-raised after Stop). An error from fn takes
// precedence over an error from Stop. fn may stop the session itself.
func With(ctx context.Context, s *Session, fn func(*Session) error) (err error) {
	if err := s.Start(ctx); err != nil {
		return err
	}
	defer func() {
		stopErr := s.Stop()
		if r := recover(); r != nil {
			panic(r)
		}
		if errors.Is(stopErr, ErrNotAcquiring) {
			stopErr = nil
		}
		if err == nil {
			err = stopErr
		}
	}()
	return fn(s)
}
