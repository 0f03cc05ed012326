// Package loader mounts HTTP features onto the fiber app.
//
// A Feature owns its routes and says whether it is enabled. The start
// command registers thumbnails, backfill and integrity in that order and
// LoadAll mounts the enabled ones, stopping at the first that fails:
//
//	mgr := loader.NewManager()
//	mgr.Register(integrity.NewFeature(store, bucket, cfg.Thumbnail, db, logg))
//	loaded, err := mgr.LoadAll(app)
package loader
