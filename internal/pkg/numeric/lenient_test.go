package numeric

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrZero(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"12.5", "12.5"},
		{" 40 ", "40"},
		{"-3", "-3"},
		{"", "0"},
		{"abc", "0"},
		{"NaN", "0"},
		{"Infinity", "0"},
		{"1,000", "0"},
		{"999999999999.5", "999999999999.5"},
		{"1000000000000", "0"},
		{"1e400", "0"},
		{"1e30000000", "0"},
		{"-1e30000000", "0"},
		{"1e-30000000", "0"},
	}
	for _, c := range cases {
		got := ParseOrZero(c.input)
		assert.True(t, decimal.RequireFromString(c.want).Equal(got), "ParseOrZero(%q) = %s, want %s", c.input, got, c.want)
	}
}

func TestLenient_UnmarshalJSON(t *testing.T) {
	var body struct {
		Number  Lenient `json:"number"`
		String  Lenient `json:"string"`
		Empty   Lenient `json:"empty"`
		Garbage Lenient `json:"garbage"`
		Object  Lenient `json:"object"`
		Null    Lenient `json:"null"`
		Missing Lenient `json:"missing"`
	}

	err := json.Unmarshal([]byte(`{
		"number": 1500.75,
		"string": "20",
		"empty": "",
		"garbage": "twelve",
		"object": {"a": 1},
		"null": null
	}`), &body)
	require.NoError(t, err)

	assert.True(t, body.Number.Set)
	assert.Equal(t, "1500.75", body.Number.Value.String())
	assert.Equal(t, "20", body.String.Value.String())

	assert.True(t, body.Empty.Set)
	assert.True(t, body.Empty.Value.IsZero())
	assert.True(t, body.Garbage.Value.IsZero())
	assert.True(t, body.Object.Value.IsZero())

	assert.False(t, body.Null.Set)
	assert.False(t, body.Missing.Set)
}

func TestLenient_Or(t *testing.T) {
	fallback := decimal.NewFromInt(30)

	assert.True(t, Lenient{}.Or(fallback).Equal(fallback))
	assert.True(t, NewLenient(decimal.Zero).Or(fallback).IsZero())
}

func TestLenient_UnmarshalJSON_HugeExponentIsZero(t *testing.T) {
	var body struct {
		Raw    Lenient `json:"raw"`
		Quoted Lenient `json:"quoted"`
	}

	err := json.Unmarshal([]byte(`{"raw": 1e30000000, "quoted": "1e400"}`), &body)

	require.NoError(t, err)
	assert.True(t, body.Raw.Set)
	assert.True(t, body.Raw.Value.IsZero())
	assert.True(t, body.Quoted.Value.IsZero())
}
