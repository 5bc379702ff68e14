package main

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/toolkit/pkg/timeutil"
)

func TestParseTable(t *testing.T) {
	out, err := executeCommand(t, "parse", "05:30 pm", "18:40", "nope", "--format", "HH:mm")
	require.NoError(t, err)
	require.Equal(t, ""+
		"TEXT        SHAPE     ISO       SECONDS  FORMATTED\n"+
		"\"05:30 pm\"  05:30 PM  17:30:00  63000    17:30\n"+
		"\"18:40\"     18:40     18:40:00  67200    18:40\n"+
		"\"nope\"      -         -         -        -\n", out)
}

func TestParseJSON(t *testing.T) {
	out, err := executeCommand(t, "parse", "14 h 05", "--format", "HH 'h' mm", "--json")
	require.NoError(t, err)

	var results []parseResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)

	r := results[0]
	require.Nil(t, r.Shape)
	require.False(t, r.Valid)
	require.Equal(t, "14:05:00", r.ISO)
	require.NotNil(t, r.Seconds)
	require.Equal(t, 50700, *r.Seconds)
	require.Equal(t, "14 h 05", r.Formatted)
}

func TestParseShapeOnly(t *testing.T) {
	out, err := executeCommand(t, "parse", "02:15:30PM", "--json")
	require.NoError(t, err)

	var results []parseResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Equal(t, &timeutil.Time{Hours: "02", Minutes: "15", Seconds: "30", Meridiem: "PM"}, results[0].Shape)
	require.True(t, results[0].Valid)
	require.Equal(t, "14:15:30", results[0].ISO)
	require.Equal(t, "14:15", results[0].Formatted)
}

func TestParseNeedsText(t *testing.T) {
	_, err := executeCommand(t, "parse")
	require.Error(t, err)
}
