package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	var d Diagnostics
	assert.False(t, d.HasWarnings())
	assert.NoError(t, d.Err())

	d.AddInfo(CodeCyclicRef, "list refers back to an enclosing container", "$[0]")
	assert.False(t, d.HasWarnings())
	assert.NoError(t, d.Err())

	d.AddWarning(CodeDegradedChild, "boom", "$[1]")
	d.AddWarning(CodeUnreadableKeys, "sealed", "")
	require.True(t, d.HasWarnings())
	assert.Equal(t, SeverityWarning, d.Warnings[0].Severity)
	assert.Equal(t, SeverityInfo, d.Infos[0].Severity)

	assert.EqualError(t, d.Err(), "$[1]: [degraded-child] boom; [unreadable-keys] sealed")
}

func TestDiagnostic_String(t *testing.T) {
	assert.Equal(t, "plain", Diagnostic{Message: "plain"}.String())
	assert.Equal(t, "$: [c] m", Diagnostic{Code: "c", Message: "m", Path: "$"}.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "unknown", Severity(9).String())
}
