package services

import (
	"errors"
	"fmt"

	"giftexchange/internal/core/domain/model/exchange"
	"giftexchange/internal/core/domain/model/kernel"
	"giftexchange/internal/core/domain/rules"
)

// attemptSeedStride separates the seeds of consecutive attempts.
const attemptSeedStride = 7919

// ErrAssignmentFailed classifies a recipient draft that ran out of attempts.
var ErrAssignmentFailed = errors.New("failed to assign recipients")

// AssignmentFailedError carries the number of attempts made and the error that
// ended the last one.
type AssignmentFailedError struct {
	Attempts int
	Cause    error
}

func (e *AssignmentFailedError) Error() string {
	return fmt.Sprintf("%s after %d attempts: %v", ErrAssignmentFailed, e.Attempts, e.Cause)
}

func (e *AssignmentFailedError) Unwrap() []error {
	return []error{ErrAssignmentFailed, e.Cause}
}

// RecipientAssigner gives every ranked member a recipient rank.
//
// One attempt clears all recipients, lets designated groups draw first (one draw
// per group per round, lowest ranked giver first) and then scans every group the
// same way until everyone has drawn. A draw excludes the giver's own group and
// every rank already claimed in the attempt. The attempt is checked with
// rules.ValidateAssignment.
//
// An exhausted range or a failed check abandons the attempt. After maxAttempts
// abandoned attempts every recipient is cleared and *AssignmentFailedError is returned.
type RecipientAssigner struct {
	cfg engineConfig
}

func NewRecipientAssigner(opts ...Option) RecipientAssigner {
	return RecipientAssigner{cfg: newEngineConfig("recipient_assigner", opts)}
}

func (a RecipientAssigner) MaxAttempts() int {
	return a.cfg.maxAttempts
}

// Assign drafts recipients for a population with a valid pick order and
// returns the number of attempts it took.
func (a RecipientAssigner) Assign(groups []*exchange.Group) (int, error) {
	if err := validatePopulation(groups); err != nil {
		return 0, err
	}
	if err := rules.ValidatePickOrder(groups); err != nil {
		return 0, err
	}

	total := exchange.TotalMembers(groups)
	base := a.cfg.seedSource()

	var lastErr error
	for attempt := 1; attempt <= a.cfg.maxAttempts; attempt++ {
		exchange.ClearRecipients(groups)

		err := a.attempt(groups, total, base+int64(attempt)*attemptSeedStride)
		if err == nil {
			err = rules.ValidateAssignment(groups)
		}
		if err == nil {
			a.cfg.logger.Info("recipients assigned", "members", total, "attempt", attempt)
			return attempt, nil
		}

		if !retryable(err) {
			exchange.ClearRecipients(groups)
			return attempt, err
		}

		lastErr = err
		a.cfg.logger.Info("recipient attempt abandoned", "attempt", attempt, "error", err)
	}

	exchange.ClearRecipients(groups)
	return a.cfg.maxAttempts, &AssignmentFailedError{Attempts: a.cfg.maxAttempts, Cause: lastErr}
}

func (a RecipientAssigner) attempt(groups []*exchange.Group, total int, seed int64) error {
	s := assignState{
		sampler: a.cfg.sampler,
		seed:    seed,
		total:   total,
		claimed: make(map[int]struct{}, total),
		logger:  a.cfg.logger,
	}

	if err := s.drawRounds(groups, true); err != nil {
		return err
	}
	return s.drawRounds(groups, false)
}

func retryable(err error) bool {
	return errors.Is(err, kernel.ErrExhaustedRange) ||
		errors.Is(err, rules.ErrMissingRecipient) ||
		errors.Is(err, rules.ErrDuplicateRecipient) ||
		errors.Is(err, rules.ErrSelfAssignment) ||
		errors.Is(err, rules.ErrSameGroupAssignment) ||
		errors.Is(err, rules.ErrUnknownRecipient)
}
