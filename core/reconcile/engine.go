package reconcile

import (
	"context"
	"fmt"
	"iter"

	"thumbnail-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// FindMissing lazily lists bucket and yields every source key whose probe
// key does not exist. It is a single pass: nothing is buffered, and the
// listing is cancelled as soon as the consumer stops or spec.Limit is hit.
//
// A probe that fails for any reason other than absence is logged and the
// source is yielded as missing, since regenerating is idempotent. A listing
// failure is yielded once as an error and ends the sequence.
func FindMissing(ctx context.Context, spec *Spec, client storage.Client, bucket string, logger *zap.Logger) iter.Seq2[string, error] {
	return scan(ctx, spec, client, bucket, logger, nil)
}

func scan(ctx context.Context, spec *Spec, client storage.Client, bucket string, logger *zap.Logger, sum *Summary) iter.Seq2[string, error] {
	if sum == nil {
		sum = &Summary{}
	}

	return func(yield func(string, error) bool) {
		listCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		objects := client.ListObjects(listCtx, bucket, minio.ListObjectsOptions{
			Prefix:    spec.Prefix,
			Recursive: true,
		})

		found := 0
		for obj := range objects {
			if obj.Err != nil {
				yield("", fmt.Errorf("failed to list %q: %w", bucket, obj.Err))
				return
			}
			sum.Listed++

			if !spec.Adapter.Accept(obj.Key) {
				continue
			}
			sum.Candidates++

			probe := spec.Adapter.ProbeKey(obj.Key)
			exists, err := storage.Exists(listCtx, client, bucket, probe)
			if err != nil {
				sum.ProbeErrors++
				logger.Warn("Probe failed, treating source as missing",
					zap.String("adapter", spec.Adapter.Name()),
					zap.String("key", obj.Key),
					zap.String("probe", probe),
					zap.Error(err),
				)
			} else if exists {
				sum.Present++
				continue
			}

			sum.Missing++
			found++
			if !yield(obj.Key, nil) {
				return
			}
			if spec.Limit > 0 && found >= spec.Limit {
				return
			}
		}

		if err := ctx.Err(); err != nil {
			yield("", err)
		}
	}
}
