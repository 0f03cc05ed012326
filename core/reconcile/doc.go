// Package reconcile finds stored sources whose derived outputs are missing.
//
// A scan lists a bucket once, filters the listing through an Adapter and
// checks a single probe key per source with a HEAD request. Sources whose
// probe is absent are reported as missing.
//
// # Components
//
//  1. Adapter: decides which objects are sources and which key to probe.
//  2. FindMissing: a lazy iter.Seq2 over missing sources. Stopping the loop
//     cancels the listing.
//  3. Collect / GetOrCollect: materialize a scan into a Plan, optionally
//     cached with a TTL and stampede protection.
//
// # Usage Example
//
//	spec := &reconcile.Spec{Adapter: adapter, Limit: 100}
//	for key, err := range reconcile.FindMissing(ctx, spec, client, bucket, logger) {
//	    if err != nil {
//	        return err
//	    }
//	    process(key)
//	}
//
// Only one probe key is checked per source. A source whose probe exists but
// whose other outputs are missing is reported as complete.
package reconcile
