package locale

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"carriertext/internal/carrier/metrics"
	"carriertext/pkg/testutil"
)

func TestWatcherReloadsOnChange(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	writeCatalog(t, dir, "de-DE.yaml", "locale: de-DE\nmessages:\n  airplane_mode: Flugzeugmodus\n")
	catalog, err := LoadDir(dir)
	require.NoError(t, err)

	reloaded := make(chan struct{}, 1)
	w, err := NewWatcher(dir, catalog, func(context.Context) {
		select {
		case reloaded <- struct{}{}:
		default:
		}
	}, WithDebounce(20*time.Millisecond), WithLogger(testutil.DiscardLogger()))
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	writeCatalog(t, dir, "de-DE.yaml", "locale: de-DE\nmessages:\n  airplane_mode: Offline\n")

	select {
	case <-reloaded:
	case <-time.After(5 * time.Second):
		t.Fatal("catalog was not reloaded")
	}

	res, err := catalog.Resources("de-DE")
	require.NoError(t, err)
	assert.Equal(t, "Offline", res.Messages.AirplaneMode)
}

func TestWatcherKeepsCatalogOnFailedReload(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	catalog, err := LoadDir(dir)
	require.NoError(t, err)

	m := metrics.New(prometheus.NewRegistry())
	called := make(chan struct{}, 1)
	w, err := NewWatcher(dir, catalog, func(context.Context) { called <- struct{}{} },
		WithDebounce(20*time.Millisecond),
		WithLogger(testutil.DiscardLogger()),
		WithMetrics(m),
	)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	writeCatalog(t, dir, "de-DE.yaml", "locale: [broken\n")

	assert.Eventually(t, func() bool {
		return promtestutil.ToFloat64(m.LocaleReloads.WithLabelValues("failure")) >= 1
	}, 5*time.Second, 10*time.Millisecond)

	assert.Empty(t, called)
	res, err := catalog.Resources("de-DE")
	require.NoError(t, err)
	assert.Equal(t, "Flugmodus", res.Messages.AirplaneMode)
}

func TestWatcherStopWithoutStart(t *testing.T) {
	defer goleak.VerifyNone(t)

	catalog, err := LoadEmbedded()
	require.NoError(t, err)

	w, err := NewWatcher(t.TempDir(), catalog, nil, WithLogger(testutil.DiscardLogger()))
	require.NoError(t, err)

	assert.NotPanics(t, w.Stop)
}

func TestWatcherStartFailsOnMissingDir(t *testing.T) {
	catalog, err := LoadEmbedded()
	require.NoError(t, err)

	w, err := NewWatcher(t.TempDir()+"/missing", catalog, nil, WithLogger(testutil.DiscardLogger()))
	require.NoError(t, err)
	defer w.Stop()

	assert.Error(t, w.Start(context.Background()))
}
