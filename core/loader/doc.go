// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface and registers its routes
// when loaded. The Manager keeps the registry and loads every enabled
// feature in registration order via LoadAll.
//
//	mgr := loader.NewManager()
//	mgr.Register(dex.NewFeature(cat, cfg.Server, logg))
//	if err := mgr.LoadAll(app); err != nil { ... }
package loader
