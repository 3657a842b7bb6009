package queries

import (
	"context"
	"strconv"
	"time"

	"scheduling/internal/core/domain/model/policy"
	"scheduling/internal/core/domain/services"
	"scheduling/internal/pkg/metrics"
)

// EvaluateCandidateQueryHandler evaluates a candidate against the configured policy.
type EvaluateCandidateQueryHandler struct {
	policy    *policy.Policy
	validator services.ComplianceValidator
	now       func() time.Time
}

// NewEvaluateCandidateQueryHandler creates the handler. A nil now defaults to time.Now.
func NewEvaluateCandidateQueryHandler(p *policy.Policy, now func() time.Time) EvaluateCandidateQueryHandler {
	if now == nil {
		now = time.Now
	}
	return EvaluateCandidateQueryHandler{
		policy:    p,
		validator: services.NewComplianceValidator(),
		now:       now,
	}
}

// Handle returns the verdict. An invalid candidate is not an error here: the verdict says why.
func (h EvaluateCandidateQueryHandler) Handle(_ context.Context, query EvaluateCandidateQuery) (services.Verdict, error) {
	if err := query.Validate(); err != nil {
		return services.Verdict{}, err
	}

	verdict := h.validator.Evaluate(query.Candidate(), h.policy, h.now())
	metrics.VerdictsTotal.WithLabelValues(strconv.FormatBool(verdict.IsValid)).Inc()
	return verdict, nil
}
