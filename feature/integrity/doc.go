// Package integrity provides health checks for the stored image tree.
//
// # Checks Provided
//
//   - Structure: the bucket exists and holds objects under the root prefix.
//   - Derivatives: every variant of one original is present. The reconciliation
//     scan only probes one variant, so this is the full-set check.
//   - Journal: the backfill journal table carries every expected column.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs the structure and journal checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/derivatives?key= : Reports per-variant presence.
//   - GET /integrity/journal : Runs the journal schema check.
package integrity
