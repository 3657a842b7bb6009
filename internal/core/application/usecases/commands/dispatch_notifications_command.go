package commands

import (
	"errors"
	"fmt"
	"time"

	"scheduling/internal/pkg/errs"
	"scheduling/internal/pkg/guard"
)

var ErrDispatchNotificationsCommandIsNotConstructed = errors.New(
	"DispatchNotificationsCommand must be created via NewDispatchNotificationsCommand constructor",
)

// DispatchNotificationsCommand sends one batch of outbox notifications.
//
// Example:
//
//	cmd, _ := NewDispatchNotificationsCommand(50, 5, time.Minute)
//	result, err := handler.Handle(ctx, cmd)
type DispatchNotificationsCommand struct {
	batchSize    int
	maxAttempts  int
	claimTimeout time.Duration

	guard guard.ConstructorGuard
}

// NewDispatchNotificationsCommand validates the batch parameters. claimTimeout is how long a
// claimed message may stay in processing before another run takes it over.
func NewDispatchNotificationsCommand(batchSize, maxAttempts int, claimTimeout time.Duration) (DispatchNotificationsCommand, error) {
	var problems []error
	if batchSize <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("batch size", fmt.Errorf("%d is not positive", batchSize)))
	}
	if maxAttempts <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("max attempts", fmt.Errorf("%d is not positive", maxAttempts)))
	}
	if claimTimeout <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("claim timeout", fmt.Errorf("%s is not positive", claimTimeout)))
	}
	if err := errors.Join(problems...); err != nil {
		return DispatchNotificationsCommand{}, err
	}

	return DispatchNotificationsCommand{
		batchSize:    batchSize,
		maxAttempts:  maxAttempts,
		claimTimeout: claimTimeout,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrDispatchNotificationsCommandIsNotConstructed)
}

// BatchSize returns the maximum number of messages per run.
func (c DispatchNotificationsCommand) BatchSize() int { return c.batchSize }

// MaxAttempts returns how often a message is tried before it is left failed.
func (c DispatchNotificationsCommand) MaxAttempts() int { return c.maxAttempts }

// ClaimTimeout returns how long a claim is honored.
func (c DispatchNotificationsCommand) ClaimTimeout() time.Duration { return c.claimTimeout }
