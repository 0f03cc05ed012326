// Package backfill generates derivatives for originals uploaded before the
// event pipeline existed, or whose events were lost.
//
// A run scans the bucket with core/reconcile, treating an original as done
// when its thumb-64 derivative exists, then feeds the missing keys to a
// Scheduler. The scheduler works in sequential batches; each batch runs
// concurrently on a bounded pool and is followed by a fixed delay.
//
// # Rendering Strategies
//
// SelectStrategy probes once at startup. When this binary carries the WebP
// encoder (cgo builds), keys are rendered locally. Otherwise each key is
// wrapped in a synthetic "object created" notification and sent to a
// delegate: a Lambda function or another server's /thumbnails/events. With
// neither available, startup fails with ErrNoRenderer.
//
// # HTTP Endpoints
//
//   - POST /backfill : Runs a backfill ({dryRun, batchSize, maxImages}).
//   - GET /backfill/runs : Lists recorded runs.
package backfill
