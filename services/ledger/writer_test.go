package ledger

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tupelotree/contact-backend/models"
	"github.com/tupelotree/contact-backend/services"
	"go.uber.org/zap"
)

func TestAppend(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("creates file and missing directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data", "nested", "contacts.csv")
		w := New(path, logger)

		rec := models.LedgerRecord{Name: "Jane Doe", Email: "jane@example.com", Message: `He said "hi"`}
		require.NoError(t, w.Append(ctx, rec))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe,jane@example.com,\"He said \"\"hi\"\"\"\n", string(data))
	})

	t.Run("sequential appends preserve arrival order", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "contacts.csv")
		w := New(path, logger)

		require.NoError(t, w.Append(ctx, models.LedgerRecord{Name: "First", Email: "a@example.com", Message: "one"}))
		require.NoError(t, w.Append(ctx, models.LedgerRecord{Name: "Second", Email: "b@example.com", Message: "two"}))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "First,a@example.com,one\nSecond,b@example.com,two\n", string(data))
	})

	t.Run("append never truncates existing content", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "contacts.csv")
		require.NoError(t, os.WriteFile(path, []byte("Existing,e@example.com,kept\n"), 0o644))

		w := New(path, logger)
		require.NoError(t, w.Append(ctx, models.LedgerRecord{Name: "New", Email: "n@example.com", Message: "added"}))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "Existing,e@example.com,kept\nNew,n@example.com,added\n", string(data))
	})

	t.Run("unwritable path is a local IO error", func(t *testing.T) {
		if os.Geteuid() == 0 {
			t.Skip("permission checks do not apply to root")
		}
		dir := t.TempDir()
		require.NoError(t, os.Chmod(dir, 0o555))
		t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

		w := New(filepath.Join(dir, "contacts.csv"), logger)
		err := w.Append(ctx, models.LedgerRecord{Name: "Jane", Email: "jane@example.com", Message: "hi"})

		require.Error(t, err)
		assert.True(t, services.IsLocalIOError(err))
	})
}

func TestPath(t *testing.T) {
	w := New("contacts.csv", zap.NewNop())
	assert.Equal(t, "contacts.csv", w.Path())
}
