package doctor

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		sev  Severity
		want string
	}{
		{SeverityPass, "pass"},
		{SeverityInfo, "info"},
		{SeverityWarning, "warning"},
		{SeverityError, "error"},
		{Severity(99), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sev.String())
		})
	}
}

func TestRunner_Run(t *testing.T) {
	r := NewRunner()
	for _, c := range []*stubCheck{
		{name: "a", status: SeverityPass},
		{name: "b", status: SeverityInfo},
		{name: "c", status: SeverityWarning},
		{name: "d", status: SeverityError},
		{name: "e", status: SeverityPass},
	} {
		r.AddCheck(c)
	}

	report := r.Run(context.Background())

	require.Len(t, report.Results, 5)
	for i, want := range []string{"a", "b", "c", "d", "e"} {
		assert.Equal(t, want, report.Results[i].Name)
	}
	assert.Equal(t, Summary{Passed: 2, Info: 1, Warnings: 1, Errors: 1}, report.Summary)
	assert.True(t, report.HasErrors())
	assert.True(t, report.HasWarnings())
	assert.False(t, report.Timestamp.IsZero())
}

func TestRunner_Empty(t *testing.T) {
	report := NewRunner().Run(context.Background())

	assert.Empty(t, report.Results)
	assert.False(t, report.HasErrors())
	assert.False(t, report.HasWarnings())
}

func TestRunner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	check := &stubCheck{name: "never", status: SeverityPass}
	r := NewRunner()
	r.AddCheck(check)
	report := r.Run(ctx)

	assert.False(t, check.ran)
	require.Len(t, report.Results, 1)
	assert.Equal(t, SeverityWarning, report.Results[0].Status)
	assert.Contains(t, report.Results[0].Message, "skipped")
}

func TestReport_JSON(t *testing.T) {
	r := NewRunner()
	r.AddCheck(&stubCheck{name: "a", status: SeverityWarning})

	data, err := json.Marshal(r.Run(context.Background()))
	require.NoError(t, err)

	assert.Contains(t, string(data), `"status":"warning"`)
	assert.Contains(t, string(data), `"warnings":1`)
}
