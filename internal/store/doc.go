// Package store provides SQLite-backed durable storage for evaluation
// records.
//
// Each record captures one evaluation: rule set, seat, hand, auction, the
// matched outcome and the full decision trail. Records are append-only and
// content-addressed: the content hash over the inputs (computed in
// internal/canonical) carries a UNIQUE constraint, so re-evaluating the
// same position is idempotent.
//
// Ordering uses seq INTEGER, never timestamps; queries order by
// seq ASC, id ASC so listings are deterministic across runs.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: enforce referential integrity
package store
