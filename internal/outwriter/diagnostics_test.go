package outwriter

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/pulseboard/pulseboard/internal/contract"
	"github.com/pulseboard/pulseboard/schema"
	"github.com/stretchr/testify/assert"
)

func TestNewCLIDiagnostics(t *testing.T) {
	d := NewCLIDiagnostics(&contract.Config{UseColors: true})
	assert.Equal(t, os.Stderr, d.out)
	assert.True(t, d.useColors)
}

func TestCLIDiagnosticsTotalMismatch(t *testing.T) {
	var buf bytes.Buffer
	d := &CLIDiagnostics{out: &buf}

	d.TotalMismatch("platform", 29.5, 31.0)

	out := buf.String()
	assert.Contains(t, out, "platform")
	assert.Contains(t, out, "29.50")
	assert.Contains(t, out, "31.00")
	assert.Contains(t, out, "diverge")
}

func TestCLIDiagnosticsTotalMismatchColored(t *testing.T) {
	var buf bytes.Buffer
	d := &CLIDiagnostics{out: &buf, useColors: true}

	d.TotalMismatch("growth", 10, 12)

	// Plain text survives regardless of whether escape codes are emitted
	assert.Contains(t, buf.String(), "team growth point totals diverge")
}

func TestCLIDiagnosticsCategoryFailed(t *testing.T) {
	var buf bytes.Buffer
	d := &CLIDiagnostics{out: &buf}

	d.CategoryFailed(schema.TeamScopeFor("platform"), schema.KPIsCategory, errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, string(schema.KPIsCategory))
	assert.Contains(t, out, "team platform")
	assert.Contains(t, out, "boom")
}

func TestCLIDiagnosticsCategoryLoadedIsSilent(t *testing.T) {
	var buf bytes.Buffer
	d := &CLIDiagnostics{out: &buf}

	d.CategoryLoaded(schema.TeamScopeFor("platform"), schema.PointsCategory)

	assert.Empty(t, buf.String())
}
