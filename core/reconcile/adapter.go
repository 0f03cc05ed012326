package reconcile

// Adapter defines how a family of stored objects is reconciled against its
// derived outputs. The scanner lists objects, asks the adapter which ones are
// sources, and probes the key the adapter names for each of them.
type Adapter interface {
	// Name returns the unique name of this adapter (e.g., "thumbnails").
	Name() string

	// Accept reports whether objectKey is a source that should have derived
	// outputs. Derived outputs themselves and unrelated objects return false.
	Accept(objectKey string) bool

	// ProbeKey returns the single derived key whose presence stands in for
	// the whole derived set of objectKey.
	ProbeKey(objectKey string) string
}
