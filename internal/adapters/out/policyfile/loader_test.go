package policyfile_test

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"scheduling/internal/adapters/out/policyfile"
	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/policy"
	"scheduling/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ShippedConfig(t *testing.T) {
	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)
	path := filepath.Join(filepath.Dir(file), "..", "..", "..", "..", "configs", "policy.yaml")

	p, err := policyfile.Load(path)

	require.NoError(t, err)
	assert.Equal(t, "Asia/Manila", p.Location().String())
	assert.InDelta(t, 4500, p.WeightThresholdKg(), 0)
	assert.Equal(t, 15*time.Minute, p.BoundaryBuffer())
	assert.ElementsMatch(t, policy.AllZones(), p.Zones())
	assert.Len(t, p.Exemptions(), len(policy.AllExemptions()))

	windows, err := p.AvailableWindows(policy.ZoneCentralBusinessDistrict)
	require.NoError(t, err)
	require.Len(t, windows, 2)
	assert.True(t, windows[1].CrossesMidnight())
	assert.True(t, windows[1].Contains(kernel.MustTimeOfDay(3, 0)))
	assert.Equal(t, "3000", p.PenaltyFor(2).String())
}

func TestParse(t *testing.T) {
	const valid = `
timezone: UTC
weightThresholdKg: 4500
boundaryBufferMinutes: 10
penalties: ["2000.50"]
exemptions: [fire-fighting-support]
zones:
  central-business-district:
    - {start: "09:00", end: "17:00"}
`
	p, err := policyfile.Parse(strings.NewReader(valid))

	require.NoError(t, err)
	assert.Equal(t, "2000.5", p.PenaltyFor(1).String())
	assert.True(t, p.IsExemptionRecognized(policy.ExemptionFireFightingSupport))
	assert.False(t, p.IsExemptionRecognized(policy.ExemptionOther))
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{
			name: "unknown key",
			doc:  "timezone: UTC\nspeedLimit: 40\n",
			want: errs.ErrValueIsInvalid,
		},
		{
			name: "missing timezone",
			doc:  "weightThresholdKg: 4500\nzones:\n  central-business-district:\n    - {start: \"09:00\", end: \"17:00\"}\n",
			want: errs.ErrValueIsRequired,
		},
		{
			name: "unknown zone",
			doc:  "timezone: UTC\nweightThresholdKg: 4500\nzones:\n  harbor:\n    - {start: \"09:00\", end: \"17:00\"}\n",
			want: errs.ErrValueIsInvalid,
		},
		{
			name: "bad window",
			doc:  "timezone: UTC\nweightThresholdKg: 4500\nzones:\n  central-business-district:\n    - {start: \"25:00\", end: \"17:00\"}\n",
			want: errs.ErrValueIsInvalid,
		},
		{
			name: "bad penalty",
			doc:  "timezone: UTC\nweightThresholdKg: 4500\npenalties: [lots]\nzones:\n  central-business-district:\n    - {start: \"09:00\", end: \"17:00\"}\n",
			want: errs.ErrValueIsInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := policyfile.Parse(strings.NewReader(tt.doc))

			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := policyfile.Load(filepath.Join(t.TempDir(), "absent.yaml"))

	require.Error(t, err)
}
