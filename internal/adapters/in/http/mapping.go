package http

import (
	"fmt"

	"scheduling/internal/core/application/usecases/queries"
	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/policy"
	"scheduling/internal/core/domain/model/schedule"
	"scheduling/internal/core/domain/services"
	"scheduling/internal/generated/servers"
	"scheduling/internal/pkg/errs"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// candidateFromAPI builds the domain candidate. Zone and exemption codes the service does not
// know are kept as the Unknown values, so the compliance check reports them with the rest
// of the verdict instead of failing the request.
func candidateFromAPI(body servers.Candidate) (schedule.Candidate, error) {
	date, err := kernel.NewDate(body.Date.Year(), body.Date.Month(), body.Date.Day())
	if err != nil {
		return schedule.Candidate{}, err
	}
	at, err := kernel.ParseTimeOfDay(body.TimeOfDay)
	if err != nil {
		return schedule.Candidate{}, err
	}

	zone, err := policy.ParseZone(body.Zone)
	if err != nil {
		zone = policy.ZoneUnknown
	}

	var opts []schedule.CandidateOption
	if body.WeightKg != nil {
		if !(*body.WeightKg > 0) {
			return schedule.Candidate{}, errs.NewValueIsInvalidErrorWithCause("weightKg",
				fmt.Errorf("%v is not a positive weight", *body.WeightKg))
		}
		opts = append(opts, schedule.WithWeightKg(*body.WeightKg))
	}
	if body.RouteTag != nil {
		opts = append(opts, schedule.WithRouteTag(*body.RouteTag))
	}
	if body.Exemption != nil {
		category, err := policy.ParseExemptionCategory(body.Exemption.Category)
		if err != nil {
			category = policy.ExemptionUnknown
		}
		opts = append(opts, schedule.WithExemption(category, body.Exemption.IsExempt))
	}
	if body.Address != nil {
		opts = append(opts, schedule.WithAddress(*body.Address))
	}
	if body.Notes != nil {
		opts = append(opts, schedule.WithNotes(*body.Notes))
	}

	return schedule.NewCandidate(date, at, zone, opts...)
}

func scheduleToAPI(view queries.ScheduleView) servers.Schedule {
	response := servers.Schedule{
		Id:            view.ID.Bytes(),
		OrderId:       view.OrderID.Bytes(),
		ProposerId:    view.ProposerID.Bytes(),
		Status:        servers.ScheduleStatus(view.Status),
		Date:          view.Date,
		TimeOfDay:     view.TimeOfDay,
		Zone:          view.Zone,
		WeightKg:      view.WeightKg,
		Address:       optional(view.Address),
		RouteTag:      optional(view.RouteTag),
		Notes:         optional(view.Notes),
		ResponseNotes: view.ResponseNotes,
		CreatedAt:     view.CreatedAt,
		UpdatedAt:     view.UpdatedAt,
	}
	if view.ConfirmerID != nil {
		confirmer := openapi_types.UUID(view.ConfirmerID.Bytes())
		response.ConfirmerId = &confirmer
	}
	if view.Exemption != nil {
		response.Exemption = &servers.Exemption{
			Category: view.Exemption.Category.String(),
			IsExempt: view.Exemption.IsExempt,
		}
	}
	return response
}

func verdictToAPI(verdict services.Verdict) servers.Verdict {
	response := servers.Verdict{
		IsValid:     verdict.IsValid,
		Violations:  findingsToAPI(verdict.Violations),
		Warnings:    findingsToAPI(verdict.Warnings),
		Suggestions: make([]servers.Suggestion, len(verdict.Suggestions)),
	}
	for i, s := range verdict.Suggestions {
		response.Suggestions[i] = servers.Suggestion{
			Message:       s.Message,
			Zone:          s.Zone.String(),
			Windows:       windowsToAPI(s.Windows),
			SuggestedTime: s.SuggestedTime.String(),
		}
	}
	return response
}

func findingsToAPI(findings []services.Finding) []servers.Finding {
	response := make([]servers.Finding, len(findings))
	for i, f := range findings {
		response[i] = servers.Finding{Code: string(f.Code), Message: f.Message}
	}
	return response
}

func windowsToAPI(windows []policy.Window) []servers.Window {
	response := make([]servers.Window, len(windows))
	for i, w := range windows {
		response[i] = servers.Window{Start: w.Start().String(), End: w.End().String()}
	}
	return response
}

func zoneWindowsToAPI(r queries.GetAvailableWindowsQueryResponse) servers.ZoneWindows {
	response := servers.ZoneWindows{
		Zone:                  r.Zone.String(),
		Timezone:              r.Timezone,
		Windows:               windowsToAPI(r.Windows),
		WeightThresholdKg:     r.WeightThresholdKg,
		Penalties:             make([]string, len(r.Penalties)),
		Exemptions:            make([]string, len(r.Exemptions)),
		BoundaryBufferMinutes: r.BoundaryBufferMin,
	}
	for i, p := range r.Penalties {
		response.Penalties[i] = p.StringFixed(2)
	}
	for i, e := range r.Exemptions {
		response.Exemptions[i] = e.String()
	}
	return response
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
