package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericUnmarshal(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		want  float64
		valid bool
	}{
		{"plain number", `12.5`, 12.5, true},
		{"integer", `7`, 7, true},
		{"quoted number", `"5000"`, 5000, true},
		{"quoted float", `"12.5"`, 12.5, true},
		{"zero", `0`, 0, true},
		{"letters", `"abc"`, 0, false},
		{"empty string", `""`, 0, false},
		{"quoted nan", `"NaN"`, 0, false},
		{"object", `{}`, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var n Numeric
			err := json.Unmarshal([]byte(tc.in), &n)
			if !tc.valid {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, n.Float64())
		})
	}
}

func TestNumericInStruct(t *testing.T) {
	var body struct {
		GlossSalary *Numeric `json:"glossSalary"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"glossSalary":"750000"}`), &body))
	require.NotNil(t, body.GlossSalary)
	assert.Equal(t, 750000, body.GlossSalary.Int())

	body.GlossSalary = nil
	require.NoError(t, json.Unmarshal([]byte(`{}`), &body))
	assert.Nil(t, body.GlossSalary)

	assert.Error(t, json.Unmarshal([]byte(`{"glossSalary":"abc"}`), &body))
}
