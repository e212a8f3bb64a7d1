package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRulesCommandJSON(t *testing.T) {
	cmd := NewRulesCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--format", "json"})

	require.NoError(t, cmd.Execute())

	var decoded struct {
		Checks []struct {
			Name string `json:"name"`
		} `json:"checks"`
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, decoded.Count, len(decoded.Checks))

	names := make([]string, 0, len(decoded.Checks))
	for _, c := range decoded.Checks {
		names = append(names, c.Name)
	}
	assert.Contains(t, names, "LeftCurly")
	assert.Contains(t, names, "NeedBraces")
	assert.Contains(t, names, "AvoidNestedBlocks")
}

func TestRulesCommandText(t *testing.T) {
	cmd := NewRulesCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--format", "text"})

	require.NoError(t, cmd.Execute())
	out := buf.String()
	assert.Contains(t, out, "LeftCurly")
	assert.Contains(t, out, "maxLineLength")
}

func TestRulesCommandShowCheck(t *testing.T) {
	cmd := NewRulesCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"LeftCurly", "--format", "yaml"})

	require.NoError(t, cmd.Execute())
	out := buf.String()
	assert.Contains(t, out, "name: LeftCurly")
	assert.Contains(t, out, "ignoreEnums")
}

func TestRulesCommandUnknownCheck(t *testing.T) {
	cmd := NewRulesCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"NoSuchCheck"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NoSuchCheck")
}
