package kernel_test

import (
	"encoding/json"
	"testing"
	"time"

	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDate(t *testing.T) {
	t.Run("should accept calendar dates", func(t *testing.T) {
		d, err := kernel.NewDate(2024, time.February, 29)

		require.NoError(t, err)
		assert.Equal(t, "2024-02-29", d.String())
		require.NoError(t, d.Validate())
	})

	t.Run("should reject normalized dates", func(t *testing.T) {
		_, err := kernel.NewDate(2023, time.February, 29)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var d kernel.Date
		assert.Equal(t, kernel.ErrDateIsNotConstructed, d.Validate())
	})
}

func TestDate_At(t *testing.T) {
	manila := time.FixedZone("PHT", 8*60*60)
	d, err := kernel.ParseDate("2026-10-20")
	require.NoError(t, err)

	at := d.At(kernel.MustTimeOfDay(3, 0), manila)

	assert.Equal(t, time.Date(2026, time.October, 19, 19, 0, 0, 0, time.UTC), at.UTC())
}

func TestDateOf(t *testing.T) {
	manila := time.FixedZone("PHT", 8*60*60)
	instant := time.Date(2026, time.October, 19, 17, 30, 0, 0, time.UTC)

	assert.Equal(t, "2026-10-20", kernel.DateOf(instant, manila).String())
	assert.Equal(t, "2026-10-19", kernel.DateOf(instant, time.UTC).String())
}

func TestDate_JSON(t *testing.T) {
	type payload struct {
		Date kernel.Date `json:"date"`
	}
	d, err := kernel.NewDate(2026, time.October, 20)
	require.NoError(t, err)

	data, err := json.Marshal(payload{Date: d})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2026-10-20"}`, string(data))

	var decoded payload
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, d.IsEqual(decoded.Date))
	assert.Equal(t, d, decoded.Date)

	require.Error(t, json.Unmarshal([]byte(`{"date":"20-10-2026"}`), &decoded))
}
