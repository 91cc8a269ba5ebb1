package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	functions "github.com/anselboero/cloud-functions"
)

const activitiesCSV = `Activity Type,Date,Title,Distance,Avg HR,Avg Pace,Moving Time
Running,2024-01-02 07:00:00,Base Run,5.0,140,06:00,00:30:00
Running,2024-01-04 07:00:00,Base Run,5.0,160,07:00,00:35:00
Cycling,2024-01-05 07:00:00,Commute,20.0,120,02:30,00:50:00
Running,2024-01-09 07:00:00,Tempo,8.0,--,05:00,00:40:00
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("DEBUG", "")
	t.Setenv("BUCKET_NAME", "")

	var out bytes.Buffer

	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")

	require.NoError(t, err)
	assert.Equal(t, functions.VERSION+"\n", out)
}

func TestConfigSample(t *testing.T) {
	out, err := run(t, "config", "sample")

	require.NoError(t, err)
	assert.Contains(t, out, "[running]")
}

func TestConfigShow(t *testing.T) {
	out, err := run(t, "config", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "running__base_runs_weekly_avg_pace.png")
}

func TestWeekly(t *testing.T) {
	file := filepath.Join(t.TempDir(), "activities.csv")
	require.NoError(t, os.WriteFile(file, []byte(activitiesCSV), 0o644))

	out, err := run(t, "weekly", "--file", file, "--sport", "Running")

	require.NoError(t, err)
	assert.Contains(t, out, "2024-01-08")
	assert.Contains(t, out, "06:30")
	assert.Contains(t, out, "151")
	assert.NotContains(t, out, "2024-01-15")
	assert.Contains(t, out, "4 rows, 1 filtered, 1 dropped, 2 loaded, 1 weeks")
}

func TestWeeklyRequiresSource(t *testing.T) {
	_, err := run(t, "weekly")

	assert.Error(t, err)
}

func TestWeeklyWithInvalidVariant(t *testing.T) {
	file := filepath.Join(t.TempDir(), "activities.csv")
	require.NoError(t, os.WriteFile(file, []byte(activitiesCSV), 0o644))

	_, err := run(t, "weekly", "--file", file, "--variant", "speed")

	assert.ErrorContains(t, err, "invalid --variant")
}

func TestWriteRows(t *testing.T) {
	rows := [][]string{{"a", "1"}, {"", "x"}, {"b"}}

	var tsv bytes.Buffer
	require.NoError(t, writeRows(&tsv, rows, "tsv"))
	assert.Equal(t, "a\t1\n\tx\nb\n", tsv.String())

	var json bytes.Buffer
	require.NoError(t, writeRows(&json, rows, "JSON"))
	assert.Equal(t, `{"a":"1","b":null}`, strings.TrimSpace(json.String()))

	assert.Error(t, writeRows(&json, rows, "xml"))
}
