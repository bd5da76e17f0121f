// Package ledger provides SQLite-backed storage for fixed-buffer lifecycle
// events and an audit over them.
//
// Every buffer handed out by a ledger Allocator produces one "acquire" event
// and, when the owning scope ends, one "release" event. Audit replays the
// log per buffer in seq order and reports three classes of finding:
//
//   - leak: acquired while already live, or still live at the end
//   - double_release: released while not live after an earlier acquire
//   - unknown_release: released before any acquire
//
// # Ordering
//
// Events are ordered by seq, a logical clock, never by wall time. Reads use
// ORDER BY seq ASC, id ASC so that audits are identical across runs.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL
//   - busy_timeout=5000
package ledger
