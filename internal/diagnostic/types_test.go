package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_AddAndQuery(t *testing.T) {
	var d Diagnostics

	assert.True(t, d.IsValid())
	require.NoError(t, d.Error())

	d.AddWarning("duplicate_class", "class listed twice", "a.yaml", "org.bukkit.Entity")
	d.AddInfo("note", "informational", "", "")
	assert.True(t, d.IsValid())

	d.AddError("missing_owner", "entry has no owner", "a.yaml: runtime.fields[0]", "")
	assert.True(t, d.HasErrors())

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t, "[a.yaml: runtime.fields[0]]: [missing_owner] entry has no owner", err.Error())

	all := d.All()
	require.Len(t, all, 3)
	assert.Equal(t, DiagnosticError, all[0].Severity)
	assert.Equal(t, DiagnosticWarning, all[1].Severity)
	assert.Equal(t, DiagnosticInfo, all[2].Severity)
}

func TestDiagnostics_Add(t *testing.T) {
	var d Diagnostics

	d.Add(Diagnostic{Severity: DiagnosticError, Code: "e"})
	d.Add(Diagnostic{Severity: DiagnosticWarning, Code: "w"})
	d.Add(Diagnostic{Code: "i"})

	assert.Len(t, d.Errors, 1)
	assert.Len(t, d.Warnings, 1)
	assert.Len(t, d.Infos, 1)
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics

	a.AddError("x", "first", "", "")
	b.AddError("y", "second", "", "")
	b.AddWarning("z", "third", "", "")

	a.Merge(b)
	assert.Len(t, a.Errors, 2)
	assert.Len(t, a.Warnings, 1)
}

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{
		Code:        "member_fallback",
		Message:     "no runtime mapping",
		Subject:     "net.minecraft.world.Entity#tik",
		Suggestions: []string{"tick", "tickCount"},
	}

	assert.Equal(t,
		"net.minecraft.world.Entity#tik: [member_fallback] no runtime mapping (did you mean tick, tickCount?)",
		d.String())

	assert.Equal(t, "plain", Diagnostic{Message: "plain"}.String())
}

func TestDidYouMean(t *testing.T) {
	assert.Empty(t, DidYouMean(nil))
	assert.Equal(t, " (did you mean tick?)", DidYouMean([]string{"tick"}))
	assert.Equal(t, " (did you mean tick, tickCount?)", DidYouMean([]string{"tick", "tickCount"}))
}

func TestDiagnosticSeverity_String(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())
}
