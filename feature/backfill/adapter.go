package backfill

import (
	"thumbnail-manager/core/reconcile"
	"thumbnail-manager/feature/thumbnail"
)

// Adapter reconciles originals against their derivative sets.
type Adapter struct {
	root string
}

var _ reconcile.Adapter = (*Adapter)(nil)

// NewAdapter creates an adapter for originals under root.
func NewAdapter(root string) *Adapter {
	if root == "" {
		root = thumbnail.DefaultRootPrefix
	}
	return &Adapter{root: root}
}

// Name returns the adapter name.
func (a *Adapter) Name() string {
	return "thumbnails"
}

// Accept skips derivatives and unsupported formats.
func (a *Adapter) Accept(key string) bool {
	return !thumbnail.IsDerivativeKey(key) && thumbnail.IsSupportedExtension(key)
}

// ProbeKey returns the smallest derivative of key.
func (a *Adapter) ProbeKey(key string) string {
	return thumbnail.DerivativeKey(key, thumbnail.ProbeVariant)
}

// Spec returns a scan spec rooted at the adapter's prefix.
func (a *Adapter) Spec(limit int) *reconcile.Spec {
	return &reconcile.Spec{
		Adapter: a,
		Prefix:  a.root + "/",
		Limit:   limit,
	}
}
