// Package thumbnail generates fixed-size WebP derivatives of uploaded images.
//
// Originals live under {root}/{ownerId}/{entityType}/{entityId}/{instanceId}.{ext}.
// Every original gets one derivative per entry in Variants, stored next to it:
//
//	owners/42/plant/7/abc-123.jpg
//	owners/42/plant/7/thumb-64/abc-123.webp
//	owners/42/plant/7/thumb-200/abc-123.webp
//	...
//
// Derivatives are cover-fit: scaled until the target box is fully covered,
// then center-cropped, so they never contain padding.
//
// # Processing
//
// A Processor takes one key through a fixed sequence of checks. The first
// match is terminal:
//
//   - keys containing "/thumb-" are derivatives and are skipped
//   - unsupported extensions are skipped
//   - keys outside the addressing scheme are skipped
//   - originals over the size limit are skipped
//   - undecodable originals fail
//
// Anything else is rendered. A variant that fails to render or upload is
// logged and omitted; the rest of the set is still written.
//
// # HTTP Endpoints
//
//   - POST /thumbnails/events : Processes an S3-style notification body.
//   - POST /thumbnails/process?key= : Processes one original.
//   - GET /thumbnails/variants : Lists the variant table.
package thumbnail
