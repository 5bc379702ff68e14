package main

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func TestOptionsTable(t *testing.T) {
	out, err := executeCommand(t, "options",
		"--format", "HH:mm",
		"--min", "10:00:00",
		"--max", "12:00:00",
		"--step", "3600",
		"--disabled", "11:00:00",
	)
	require.NoError(t, err)
	require.Equal(t, ""+
		"INDEX  LABEL  VALUE     DISABLED\n"+
		"0      10:00  10:00:00  \n"+
		"1      11:00  11:00:00  yes\n"+
		"2      12:00  12:00:00  \n", out)
}

func TestOptionsJSON(t *testing.T) {
	out, err := executeCommand(t, "options",
		"--format", "hh:mm a",
		"--min", "11:00:00",
		"--max", "13:30:00",
		"--step", "5400",
		"--disabled", "12:00:00-12:59:59",
		"--json",
	)
	require.NoError(t, err)

	var payload optionsJSONPayload
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	require.Equal(t, 2, payload.Count)
	require.Equal(t, "11:00 AM", payload.Options[0].Label)
	require.False(t, payload.Options[0].Disabled)
	require.Equal(t, "12:30 PM", payload.Options[1].Label)
	require.True(t, payload.Options[1].Disabled)
	require.Equal(t, []string{"11", "12"}, payload.Steps.Hours)
	require.Equal(t, []string{"00", "30"}, payload.Steps.Minutes)
}

func TestOptionsRejectsBadFlags(t *testing.T) {
	cases := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "min without seconds", args: []string{"--min", "10:00"}, wantErr: "invalid --min"},
		{name: "signed min", args: []string{"--min", "-1:00:00", "--max", "00:00:00"}, wantErr: "invalid --min"},
		{name: "plus sign", args: []string{"--min", "+1:00:00"}, wantErr: "invalid --min"},
		{name: "unpadded max", args: []string{"--max", "9:00:00"}, wantErr: "invalid --max"},
		{name: "max past midnight", args: []string{"--max", "24:00:00"}, wantErr: "invalid --max"},
		{name: "huge max", args: []string{"--min", "00:00:00", "--max", "999999999999:00:00", "--step", "1"}, wantErr: "invalid --max"},
		{name: "too many options", args: []string{"--min", "00:00:00", "--max", "23:59:59", "--step", "1"}, wantErr: "more than 4096"},
		{name: "disabled time", args: []string{"--disabled", "noon"}, wantErr: "invalid --disabled"},
		{name: "unpadded disabled", args: []string{"--disabled", "1:2:3"}, wantErr: "invalid --disabled"},
		{name: "signed disabled", args: []string{"--disabled", "-01:00:00"}, wantErr: "invalid --disabled"},
		{name: "unpadded range", args: []string{"--disabled", "1:00:00-02:00:00"}, wantErr: "invalid --disabled"},
		{name: "reversed range", args: []string{"--disabled", "13:00:00-12:00:00"}, wantErr: "invalid --disabled"},
		{name: "incomplete range", args: []string{"--disabled", "13:00:00-"}, wantErr: "invalid --disabled"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := executeCommand(t, append([]string{"options"}, tc.args...)...)
			require.ErrorContains(t, err, tc.wantErr)
			require.Empty(t, out)
		})
	}
}

func TestOptionsAtTheCap(t *testing.T) {
	out, err := executeCommand(t, "options", "--min", "00:00:00", "--max", "01:08:15", "--step", "1", "--json")
	require.NoError(t, err)

	var payload optionsJSONPayload
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	require.Equal(t, 4096, payload.Count)
}

func TestOptionsEmptyRange(t *testing.T) {
	out, err := executeCommand(t, "options", "--min", "12:00:00", "--max", "11:00:00", "--json")
	require.NoError(t, err)

	var payload optionsJSONPayload
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	require.Zero(t, payload.Count)
	require.Empty(t, payload.Options)
}
