// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCommand_Valid(t *testing.T) {
	out, _, err := execute(t, "check", boostScenario)
	require.NoError(t, err)
	assert.Equal(t, "✓ boost-x: valid (2 events, 2 stages, 2 histories, 4 searches)\n", out)
}

func TestCheckCommand_ValidJSON(t *testing.T) {
	out, _, err := execute(t, "--format", "json", "check", boostScenario)
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   CheckResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, CheckResult{Name: "boost-x", Valid: true, Events: 2, Stages: 2, Histories: 2, Searches: 4}, resp.Data)
}

func TestCheckCommand_Invalid(t *testing.T) {
	out, _, err := execute(t, "check", invalidScenario)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E001]")
	assert.Contains(t, out, "epsilon")
}
