package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codevet/codevet/internal/domain"
)

func TestLoad_NoHistoryFile(t *testing.T) {
	entries, err := New().Load(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestSaveAndLoad_AppendsEntries(t *testing.T) {
	dir := t.TempDir()
	h := New()

	first := domain.HistoryEntry{
		Timestamp: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		File:      "/src/app.py",
		Language:  domain.LanguagePython,
		Status:    domain.StatusPass,
		Commit:    "abc123",
		Branch:    "main",
	}
	require.NoError(t, h.Save(dir, first))
	require.NoError(t, h.Save(dir, domain.HistoryEntry{
		Timestamp: time.Date(2026, 8, 2, 12, 0, 0, 0, time.UTC),
		File:      "/src/Main.java",
		Language:  domain.LanguageJava,
		Status:    domain.StatusFail,
	}))

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, first, entries[0])
	assert.Equal(t, domain.StatusFail, entries[1].Status)
}
