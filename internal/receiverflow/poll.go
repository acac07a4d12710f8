package receiverflow

import (
	"context"
	"time"
)

// PollStatus fetches the review status at END every interval until it is
// APPROVED or REJECTED, ctx ends, or the session leaves END. Fetch failures
// are stored as the session error and polling continues. A non-positive
// interval uses the Flow's configured interval.
func (f *Flow) PollStatus(ctx context.Context, interval time.Duration) (*VerificationStatus, error) {
	f.mu.Lock()
	if f.state.Step != StepEnd {
		defer f.mu.Unlock()
		return nil, &WrongStepError{Want: StepEnd, Got: f.state.Step}
	}
	if f.pollActive {
		f.mu.Unlock()
		return nil, ErrInFlight
	}
	if interval <= 0 {
		interval = f.pollInterval
	}
	ctx, cancel := context.WithCancel(ctx)
	f.stopPoll = cancel
	f.pollActive = true
	token := f.seq
	authCode := f.authCode
	f.mu.Unlock()

	defer func() {
		cancel()
		f.mu.Lock()
		f.pollActive = false
		f.mu.Unlock()
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		status, err := f.api.VerificationStatus(ctx, authCode)

		f.mu.Lock()
		if token != f.seq {
			f.mu.Unlock()
			return nil, ErrStale
		}
		if err != nil {
			if ctx.Err() == nil {
				verr := f.fail(err)
				f.logger.DebugContext(ctx, "status poll failed", "kind", verr.Kind.String())
			}
		} else {
			f.state.Error = nil
			v := *status
			f.state.Verification = &v
			if status.Status.IsTerminal() {
				f.mu.Unlock()
				return status, nil
			}
		}
		f.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}
