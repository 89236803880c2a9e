package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloaderState(t *testing.T) {
	t.Run("guide open initially", func(t *testing.T) {
		s := NewDownloaderState()
		assert.Equal(t, StatusIdle, s.Status)
		assert.True(t, s.ShowGuide)
	})

	t.Run("success hides guide", func(t *testing.T) {
		s := NewDownloaderState()
		require.NoError(t, s.Start("https://youtu.be/abc123"))
		assert.True(t, s.IsLoading())
		require.NoError(t, s.Succeed(&VideoInfo{VideoMetadata: VideoMetadata{Title: "Demo"}}))
		assert.Equal(t, StatusSuccess, s.Status)
		assert.False(t, s.ShowGuide)
		assert.Equal(t, "Demo", s.Video.Title)
	})

	t.Run("start clears stale video", func(t *testing.T) {
		s := NewDownloaderState()
		require.NoError(t, s.Start("a"))
		require.NoError(t, s.Succeed(&VideoInfo{VideoMetadata: VideoMetadata{Title: "Demo"}}))
		require.NoError(t, s.Start("b"))
		assert.Nil(t, s.Video)
		require.NoError(t, s.Fail("boom"))
		assert.Nil(t, s.Video)
		assert.Equal(t, "boom", s.Error)
		assert.True(t, s.ShowGuide)
	})

	t.Run("no re-entry while loading", func(t *testing.T) {
		s := NewDownloaderState()
		require.NoError(t, s.Start("a"))
		assert.ErrorIs(t, s.Start("b"), ErrRequestInFlight)
		assert.Equal(t, "a", s.URL)
	})

	t.Run("finish requires loading", func(t *testing.T) {
		s := NewDownloaderState()
		assert.ErrorIs(t, s.Succeed(&VideoInfo{}), ErrNotLoading)
		assert.ErrorIs(t, s.Fail("x"), ErrNotLoading)
	})
}

func TestOptimizerState(t *testing.T) {
	t.Run("idle to success", func(t *testing.T) {
		s := NewOptimizerState()
		require.NoError(t, s.Start("How to bake bread", ""))
		assert.True(t, s.IsLoading())
		assert.False(t, s.HasResult())
		require.NoError(t, s.Succeed(&AIAnalysisResult{OptimizedTitle: "x"}))
		assert.True(t, s.HasResult())
	})

	t.Run("error clears prior result", func(t *testing.T) {
		s := NewOptimizerState()
		require.NoError(t, s.Start("a", ""))
		require.NoError(t, s.Succeed(&AIAnalysisResult{OptimizedTitle: "x"}))
		require.NoError(t, s.Start("b", ""))
		require.NoError(t, s.Fail())
		assert.Equal(t, StatusError, s.Status)
		assert.Nil(t, s.Result)
		assert.False(t, s.HasResult())
	})

	t.Run("resubmit after error", func(t *testing.T) {
		s := NewOptimizerState()
		require.NoError(t, s.Start("a", ""))
		require.NoError(t, s.Fail())
		require.NoError(t, s.Start("a", "more context"))
		assert.Equal(t, StatusLoading, s.Status)
		assert.Equal(t, "more context", s.Context)
	})

	t.Run("loading is not re-enterable", func(t *testing.T) {
		s := NewOptimizerState()
		require.NoError(t, s.Start("a", ""))
		assert.ErrorIs(t, s.Start("a", ""), ErrRequestInFlight)
	})
}
