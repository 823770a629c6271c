package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bndl/internal/adapters/config"
	"go.trai.ch/bndl/internal/app"
	"go.trai.ch/bndl/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func newTestApp(t *testing.T) (*app.App, *mocks.MockBundleCache, *mocks.MockScanner, *mocks.MockEditorLauncher) {
	t.Helper()

	ctrl := gomock.NewController(t)
	cache := mocks.NewMockBundleCache(ctrl)
	scanner := mocks.NewMockScanner(ctrl)
	editor := mocks.NewMockEditorLauncher(ctrl)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()

	cfg := &config.Config{Roots: "/projects:/work", CacheDir: t.TempDir()}

	return app.New(cfg, cache, scanner, editor, log), cache, scanner, editor
}

func TestApp_Launch(t *testing.T) {
	t.Run("refreshes then launches with the list path", func(t *testing.T) {
		a, cache, scanner, editor := newTestApp(t)

		cache.EXPECT().
			EnsureFresh(gomock.Any(), "/projects:/work", false, scanner).
			Return("/cache/local_bundles.json", nil)
		editor.EXPECT().
			Launch(gomock.Any(), "/cache/local_bundles.json", []string{"--wait"}).
			Return(0, nil)

		code, err := a.Launch(t.Context(), []string{"--wait"})
		require.NoError(t, err)
		assert.Equal(t, 0, code)
	})

	t.Run("propagates the editor exit code", func(t *testing.T) {
		a, cache, _, editor := newTestApp(t)

		cache.EXPECT().
			EnsureFresh(gomock.Any(), gomock.Any(), false, gomock.Any()).
			Return("/cache/local_bundles.json", nil)
		editor.EXPECT().
			Launch(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(3, nil)

		code, err := a.Launch(t.Context(), nil)
		require.NoError(t, err)
		assert.Equal(t, 3, code)
	})

	t.Run("refresh failure skips the editor", func(t *testing.T) {
		a, cache, _, _ := newTestApp(t)

		cache.EXPECT().
			EnsureFresh(gomock.Any(), gomock.Any(), false, gomock.Any()).
			Return("", zerr.New("scan failed"))

		_, err := a.Launch(t.Context(), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to refresh the bundle list")
	})
}

func TestApp_Refresh(t *testing.T) {
	t.Run("returns the list path", func(t *testing.T) {
		a, cache, scanner, _ := newTestApp(t)

		cache.EXPECT().
			EnsureFresh(gomock.Any(), "/projects:/work", false, scanner).
			Return("/cache/local_bundles.json", nil)

		path, err := a.Refresh(t.Context(), false)
		require.NoError(t, err)
		assert.Equal(t, "/cache/local_bundles.json", path)
	})

	t.Run("force is forwarded", func(t *testing.T) {
		a, cache, scanner, _ := newTestApp(t)

		cache.EXPECT().
			EnsureFresh(gomock.Any(), "/projects:/work", true, scanner).
			Return("/cache/local_bundles.json", nil)

		_, err := a.Refresh(t.Context(), true)
		require.NoError(t, err)
	})

	t.Run("propagates cache errors", func(t *testing.T) {
		a, cache, _, _ := newTestApp(t)

		cache.EXPECT().
			EnsureFresh(gomock.Any(), gomock.Any(), false, gomock.Any()).
			Return("", zerr.New("cannot create cache directory"))

		_, err := a.Refresh(t.Context(), false)
		require.Error(t, err)
	})
}

func TestApp_Bundles(t *testing.T) {
	t.Run("refreshes then reads", func(t *testing.T) {
		a, cache, _, _ := newTestApp(t)

		gomock.InOrder(
			cache.EXPECT().
				EnsureFresh(gomock.Any(), gomock.Any(), false, gomock.Any()).
				Return("/cache/local_bundles.json", nil),
			cache.EXPECT().
				Read().
				Return([]string{"/projects/alpha", "/work/beta"}, nil),
		)

		bundles, err := a.Bundles(t.Context())
		require.NoError(t, err)
		assert.Equal(t, []string{"/projects/alpha", "/work/beta"}, bundles)
	})

	t.Run("propagates read errors", func(t *testing.T) {
		a, cache, _, _ := newTestApp(t)

		cache.EXPECT().
			EnsureFresh(gomock.Any(), gomock.Any(), false, gomock.Any()).
			Return("/cache/local_bundles.json", nil)
		cache.EXPECT().
			Read().
			Return(nil, zerr.New("cannot parse the bundle list"))

		_, err := a.Bundles(t.Context())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read the bundle list")
	})
}
