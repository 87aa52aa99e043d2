package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStayDateJSON(t *testing.T) {
	data, err := json.Marshal(NewAvailableRoom(101))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"checkin":"","checkout":""`)

	in := NewStayDate(time.Date(2026, 10, 14, 14, 0, 0, 0, time.FixedZone("IST", 19800)))
	data, err = json.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, `"2026-10-14T14:00:00+05:30"`, string(data))

	var back StayDate
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.Equal(in.Time))
}

func TestStayDateUnmarshal(t *testing.T) {
	cases := map[string]time.Time{
		`""`:                 {},
		`null`:               {},
		`"2026-10-14T14:00"`: time.Date(2026, 10, 14, 14, 0, 0, 0, time.Local),
		`"2026-10-14"`:       time.Date(2026, 10, 14, 0, 0, 0, 0, time.Local),
	}
	for input, want := range cases {
		var d StayDate
		require.NoError(t, json.Unmarshal([]byte(input), &d), input)
		assert.True(t, d.Equal(want), "%s decoded as %s", input, d.Time)
	}

	var d StayDate
	assert.Error(t, json.Unmarshal([]byte(`"soon"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`42`), &d))
}

func TestParseStayDate(t *testing.T) {
	ist := time.FixedZone("IST", 19800)
	got, err := ParseStayDate(" 2026-10-14T14:00 ", ist)
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2026, 10, 14, 14, 0, 0, 0, ist)))

	_, err = ParseStayDate("", ist)
	assert.Error(t, err)
}
