package schedulerepo

import (
	"testing"
	"time"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/order"
	"scheduling/internal/core/domain/model/policy"
	"scheduling/internal/core/domain/model/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDTO_RoundTrip(t *testing.T) {
	buyer, seller := kernel.NewUUID(), kernel.NewUUID()
	o, err := order.NewOrder(kernel.NewUUID(), buyer, seller)
	require.NoError(t, err)

	date, err := kernel.ParseDate("2026-10-20")
	require.NoError(t, err)
	candidate, err := schedule.NewCandidate(date, kernel.MustTimeOfDay(3, 0), policy.ZoneCentralBusinessDistrict,
		schedule.WithWeightKg(5000),
		schedule.WithExemption(policy.ExemptionFireFightingSupport, true),
		schedule.WithRouteTag("north loop"),
		schedule.WithAddress("Pier 4"),
		schedule.WithNotes("call the gate"),
	)
	require.NoError(t, err)

	at := time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)
	s, err := schedule.NewProposal(kernel.NewUUID(), o, seller, candidate, at)
	require.NoError(t, err)
	notes := "see you then"
	require.NoError(t, s.Confirm(o, buyer, &notes, at.Add(time.Hour)))

	dto := fromDomain(s)
	assert.Equal(t, "2026-10-20", dto.DeliveryDate)
	assert.Equal(t, "03:00", dto.TimeOfDay)
	assert.Equal(t, "central-business-district", dto.Zone)
	require.NotNil(t, dto.ExemptionCategory)
	assert.Equal(t, "fire-fighting-support", *dto.ExemptionCategory)
	assert.Equal(t, int(schedule.Confirmed), dto.Status)

	restored, err := ToDomain(dto)
	require.NoError(t, err)
	assert.True(t, s.IsEqual(restored))
	assert.True(t, candidate.IsEqual(restored.Candidate()))
	assert.Equal(t, schedule.Confirmed, restored.Status())
	require.NotNil(t, restored.Confirmer())
	assert.Equal(t, buyer, *restored.Confirmer())
	assert.Equal(t, &notes, restored.ResponseNotes())
	assert.Equal(t, s.UpdatedAt(), restored.UpdatedAt())
	assert.Empty(t, restored.DomainEvents())
}

func TestDTO_CorruptedStatusFailsRestore(t *testing.T) {
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	date, err := kernel.ParseDate("2026-10-20")
	require.NoError(t, err)
	candidate, err := schedule.NewCandidate(date, kernel.MustTimeOfDay(11, 0), policy.ZoneCentralBusinessDistrict)
	require.NoError(t, err)
	s, err := schedule.NewProposal(kernel.NewUUID(), o, o.Buyer(), candidate, time.Now())
	require.NoError(t, err)

	dto := fromDomain(s)
	dto.Status = int(schedule.Confirmed)

	_, err = ToDomain(dto)
	require.Error(t, err)
}
