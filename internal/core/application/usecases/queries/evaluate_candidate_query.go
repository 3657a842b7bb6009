package queries

import (
	"errors"

	"scheduling/internal/core/domain/model/schedule"
	"scheduling/internal/pkg/guard"
)

var ErrEvaluateCandidateQueryIsNotConstructed = errors.New(
	"EvaluateCandidateQuery must be created via NewEvaluateCandidateQuery constructor",
)

// EvaluateCandidateQuery is a dry run of the compliance check, used to show guidance while a
// proposal is being filled in. Nothing is stored.
type EvaluateCandidateQuery struct {
	candidate schedule.Candidate

	guard guard.ConstructorGuard
}

// NewEvaluateCandidateQuery wraps a candidate.
func NewEvaluateCandidateQuery(candidate schedule.Candidate) (EvaluateCandidateQuery, error) {
	if err := candidate.Validate(); err != nil {
		return EvaluateCandidateQuery{}, err
	}
	return EvaluateCandidateQuery{candidate: candidate, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q EvaluateCandidateQuery) Validate() error {
	return q.guard.Validate(ErrEvaluateCandidateQueryIsNotConstructed)
}

func (q EvaluateCandidateQuery) Candidate() schedule.Candidate { return q.candidate }
