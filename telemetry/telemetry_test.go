package telemetry_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/kgalang/ledgerbook/telemetry"
)

func TestTimingCollectorReport(t *testing.T) {
	collector := telemetry.NewTimingCollector()

	root := collector.Start("accounts")
	child := root.Child("store.read")
	child.End()
	grandchild := root.Child("book.balances")
	grandchild.Child("book.summary").End()
	grandchild.End()
	root.End()

	var buf bytes.Buffer
	collector.Report(&buf)
	report := buf.String()

	assert.Contains(t, report, "accounts:")
	assert.Contains(t, report, "├─ store.read:")
	assert.Contains(t, report, "└─ book.balances:")
	assert.Contains(t, report, "   └─ book.summary:")

	lines := strings.Split(strings.TrimRight(report, "\n"), "\n")
	assert.Equal(t, 4, len(lines))
}

func TestStartTimerNestsUnderRootTimer(t *testing.T) {
	collector := telemetry.NewTimingCollector()
	ctx := telemetry.WithCollector(context.Background(), collector)

	root := collector.Start("journal")
	ctx = telemetry.WithRootTimer(ctx, root)

	telemetry.StartTimer(ctx, "store.read").End()
	root.End()

	var buf bytes.Buffer
	collector.Report(&buf)

	// Nested, not a second top-level entry.
	assert.Contains(t, buf.String(), "└─ store.read:")
	assert.Equal(t, 2, len(strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")))
}

func TestStartTimerWithoutRootStartsTopLevel(t *testing.T) {
	collector := telemetry.NewTimingCollector()
	ctx := telemetry.WithCollector(context.Background(), collector)

	telemetry.StartTimer(ctx, "store.read").End()

	var buf bytes.Buffer
	collector.Report(&buf)
	assert.Contains(t, buf.String(), "store.read:")
}

func TestNoCollectorIsNoOp(t *testing.T) {
	ctx := context.Background()

	// Safe to use without a collector attached.
	timer := telemetry.StartTimer(ctx, "anything")
	timer.Child("nested").End()
	timer.End()

	var buf bytes.Buffer
	telemetry.FromContext(ctx).Report(&buf)
	assert.Equal(t, "", buf.String())
}
