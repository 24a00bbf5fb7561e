package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	var d Diagnostics
	assert.False(t, d.HasErrors())
	assert.NoError(t, d.Error())

	d.AddWarning("W1", "ambiguous", "sort", "KEY.0.field")
	d.AddInfo("I1", "note", "", "")
	assert.False(t, d.HasErrors())

	d.AddError("E1", "unknown terminal \"cnt\"", "sort", "KEY.0.field", "count")

	d.AddError("E2", "bad", "", "")

	require.True(t, d.HasErrors())
	assert.Len(t, d.Errors, 2)
	assert.Len(t, d.Warnings, 1)
	assert.Len(t, d.Infos, 1)
	assert.EqualError(t, d.Error(),
		`[sort] KEY.0.field: [E1] unknown terminal "cnt" (did you mean count?); [E2] bad`)
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(42).String())
}
