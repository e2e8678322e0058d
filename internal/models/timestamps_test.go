package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextTimestamp(t *testing.T) {
	base := time.Date(2026, 3, 1, 18, 30, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		previous time.Time
		now      time.Time
		expected time.Time
	}{
		{name: "clock moved forward", previous: base, now: base.Add(time.Second), expected: base.Add(time.Second)},
		{name: "clock stood still", previous: base, now: base, expected: base.Add(time.Microsecond)},
		{name: "clock went backwards", previous: base, now: base.Add(-time.Hour), expected: base.Add(time.Microsecond)},
		{name: "sub-microsecond advance", previous: base, now: base.Add(400 * time.Nanosecond), expected: base.Add(time.Microsecond)},
		{name: "zero previous", previous: time.Time{}, now: base.Add(1500 * time.Nanosecond), expected: base.Add(time.Microsecond)},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got := nextTimestamp(tt.previous, tt.now)
			assert.True(t, tt.expected.Equal(got), "got %s, expected %s", got, tt.expected)
			assert.True(t, got.After(tt.previous))
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestNextTimestamp_NonUTCInput(t *testing.T) {
	zone := time.FixedZone("CET", 3600)
	now := time.Date(2026, 3, 1, 19, 30, 0, 0, zone)

	got := nextTimestamp(time.Time{}, now)
	assert.Equal(t, time.UTC, got.Location())
	assert.True(t, now.Equal(got))
}

func TestPizzaTouch(t *testing.T) {
	base := time.Date(2026, 3, 1, 18, 30, 0, 0, time.UTC)
	pizza := Pizza{CreatedAt: base, UpdatedAt: base}

	pizza.Touch(base)
	first := pizza.UpdatedAt
	pizza.Touch(base)

	assert.True(t, first.After(base))
	assert.True(t, pizza.UpdatedAt.After(first))
	assert.True(t, pizza.CreatedAt.Equal(base), "createdAt never moves")
}

func TestCreationTimestamps(t *testing.T) {
	now := time.Date(2026, 3, 1, 18, 30, 0, 123456789, time.UTC)

	createdAt, updatedAt := creationTimestamps(time.Time{}, time.Time{}, now)
	assert.True(t, createdAt.Equal(now.Truncate(time.Microsecond)))
	assert.True(t, updatedAt.Equal(createdAt))

	earlier := now.Add(-time.Hour)
	createdAt, updatedAt = creationTimestamps(earlier, time.Time{}, now)
	assert.True(t, createdAt.Equal(earlier), "an explicit createdAt is kept")
	assert.True(t, updatedAt.Equal(earlier))
}

func TestPizzaJSON(t *testing.T) {
	pizza := Pizza{ID: 3, Name: "Margherita", UnitPrice: decimal.RequireFromString("10.90")}

	raw, err := json.Marshal(pizza)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"unitPrice":10.9`, "prices are JSON numbers")
	assert.Contains(t, string(raw), `"soldOut":false`)
	assert.Contains(t, string(raw), `"imageUrl":null`)
}

func TestNewErrorResponse(t *testing.T) {
	raw, err := json.Marshal(NewErrorResponse(MsgOrderNotFound))
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"Order not found"}`, string(raw))
}
