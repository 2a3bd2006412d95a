package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertBizMetricLine checks that the Prometheus output contains a business metric
// matching the given name, partial label pattern, and value. Uses regex to handle
// extra OTel scope labels injected by the Prometheus exporter.
func assertBizMetricLine(t *testing.T, output, name, labels, value string) {
	t.Helper()
	pattern := name + `\{[^}]*` + labels + `[^}]*\} ` + value
	assert.Regexp(t, pattern, output)
}

func TestNewBusinessMetrics(t *testing.T) {
	t.Run("Success_CreateBusinessMetrics", func(t *testing.T) {
		provider, err := NewProvider("test_app")
		require.NoError(t, err)

		businessMetrics, err := NewBusinessMetrics(provider.MeterProvider(), "test_app")

		require.NoError(t, err)
		assert.NotNil(t, businessMetrics)
	})
}

func TestBusinessMetrics_RecordOperation(t *testing.T) {
	provider, err := NewProvider("test_app")
	require.NoError(t, err)

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "test_app")
	require.NoError(t, err)

	t.Run("Success_RecordSuccessfulOperation", func(t *testing.T) {
		// Should not panic
		bm.RecordOperation(context.Background(), "auth", "login", "success")
	})

	t.Run("Success_RecordFailedOperation", func(t *testing.T) {
		// Should not panic
		bm.RecordOperation(context.Background(), "auth", "login", "error")
	})

	t.Run("Success_RecordMultipleDomains", func(t *testing.T) {
		bm.RecordOperation(context.Background(), "auth", "login", "success")
		bm.RecordOperation(context.Background(), "pipeline", "process_files", "success")
		bm.RecordOperation(context.Background(), "templates", "template_list", "error")
	})
}

func TestBusinessMetrics_RecordDuration(t *testing.T) {
	provider, err := NewProvider("test_app")
	require.NoError(t, err)

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "test_app")
	require.NoError(t, err)

	t.Run("Success_RecordSuccessfulDuration", func(t *testing.T) {
		// Should not panic
		bm.RecordDuration(context.Background(), "auth", "login", 123*time.Millisecond, "success")
	})

	t.Run("Success_RecordFailedDuration", func(t *testing.T) {
		// Should not panic
		bm.RecordDuration(context.Background(), "auth", "login", 456*time.Millisecond, "error")
	})

	t.Run("Success_RecordMultipleDomains", func(t *testing.T) {
		bm.RecordDuration(context.Background(), "auth", "login", 100*time.Millisecond, "success")
		bm.RecordDuration(context.Background(), "pipeline", "process_files", 200*time.Millisecond, "success")
		bm.RecordDuration(context.Background(), "templates", "template_list", 300*time.Millisecond, "error")
	})
}

func TestNewNoOpBusinessMetrics(t *testing.T) {
	noOpMetrics := NewNoOpBusinessMetrics()

	assert.NotNil(t, noOpMetrics)
	assert.IsType(t, &NoOpBusinessMetrics{}, noOpMetrics)

	t.Run("NoOp_RecordOperationDoesNotPanic", func(t *testing.T) {
		// Should not panic or do anything
		noOpMetrics.RecordOperation(context.Background(), "auth", "login", "success")
		noOpMetrics.RecordOperation(context.Background(), "pipeline", "process_files", "error")
	})

	t.Run("NoOp_RecordItemsDoesNotPanic", func(t *testing.T) {
		noOpMetrics.RecordItems(context.Background(), "pipeline", "process_files", "file", 3)
	})

	t.Run("NoOp_RecordDurationDoesNotPanic", func(t *testing.T) {
		// Should not panic or do anything
		noOpMetrics.RecordDuration(
			context.Background(),
			"auth",
			"login",
			100*time.Millisecond,
			"success",
		)
		noOpMetrics.RecordDuration(context.Background(), "pipeline", "process_files", 200*time.Millisecond, "error")
	})
}

func TestBusinessMetrics_Integration(t *testing.T) {
	provider, err := NewProvider("integration_test")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "integration_test")
	require.NoError(t, err)

	// Record various operations
	ctx := context.Background()

	// Record operation counts
	bm.RecordOperation(ctx, "auth", "login", "success")
	bm.RecordOperation(ctx, "auth", "login", "success")
	bm.RecordOperation(ctx, "auth", "login", "error")
	bm.RecordOperation(ctx, "pipeline", "process_files", "success")
	bm.RecordOperation(ctx, "pipeline", "process_text", "success")
	bm.RecordOperation(ctx, "templates", "template_list", "success")

	// Record operation durations
	bm.RecordDuration(ctx, "auth", "login", 50*time.Millisecond, "success")
	bm.RecordDuration(ctx, "auth", "login", 60*time.Millisecond, "success")
	bm.RecordDuration(ctx, "auth", "login", 100*time.Millisecond, "error")
	bm.RecordDuration(ctx, "pipeline", "process_files", 10*time.Millisecond, "success")
	bm.RecordDuration(ctx, "pipeline", "process_text", 20*time.Millisecond, "success")
	bm.RecordDuration(ctx, "templates", "template_list", 150*time.Millisecond, "success")

	// Record item counts; non-positive counts are dropped
	bm.RecordItems(ctx, "pipeline", "process_files", "file", 2)
	bm.RecordItems(ctx, "pipeline", "process_files", "file", 1)
	bm.RecordItems(ctx, "pipeline", "process_files", "file", 0)

	// Metrics should be recorded without errors
	// Verify metrics in Prometheus registry
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	provider.Handler().ServeHTTP(w, req)

	output := w.Body.String()

	// Check operation counts
	assertBizMetricLine(
		t,
		output,
		`integration_test_operations_total`,
		`domain="auth".*operation="login".*status="success"`,
		`2`,
	)
	assertBizMetricLine(
		t,
		output,
		`integration_test_operations_total`,
		`domain="auth".*operation="login".*status="error"`,
		`1`,
	)
	assertBizMetricLine(
		t,
		output,
		`integration_test_operations_total`,
		`domain="pipeline".*operation="process_files".*status="success"`,
		`1`,
	)

	// Check item counts
	assertBizMetricLine(
		t,
		output,
		`integration_test_items_total`,
		`domain="pipeline".*operation="process_files".*unit="file"`,
		`3`,
	)

	// Check durations (existence)
	assertBizMetricLine(
		t,
		output,
		`integration_test_operation_duration_seconds_count`,
		`domain="auth".*operation="login".*status="success"`,
		`2`,
	)
	assertBizMetricLine(
		t,
		output,
		`integration_test_operation_duration_seconds_sum`,
		`domain="auth".*operation="login".*status="success"`,
		``,
	)
}

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, "success", StatusFromError(nil))
	assert.Equal(t, "error", StatusFromError(assert.AnError))
}
