package ledger

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// createTestLedger opens a fresh ledger in a temp directory.
func createTestLedger(t *testing.T) *Ledger {
	t.Helper()
	l, err := Open(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { l.Close() })
	return l
}
