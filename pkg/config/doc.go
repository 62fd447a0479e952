// Package config persists and restores device configurations.
//
// A Snapshot is captured from a feature map with Dump, serialized with
// Encode or WriteFile, parsed with Decode or ReadFile and written back with
// Apply:
//
//	snap, err := config.Dump(ctx, cam.Features())
//	err = config.WriteFile("camera.yaml", snap, config.WriteOptions{})
//
//	snap, err = config.ReadFile("camera.yaml")
//	res := config.Apply(ctx, snap, cam.Features())
//	for name, err := range res.Errors {
//	    ...
//	}
//
// # File formats
//
// YAML (.yaml, .yml) is the default and keeps the feature map order. TOML
// (.toml) is supported for compatibility and is written sorted by feature
// name. Both start with a comment header.
//
// # Apply semantics
//
// Apply never stops at the first problem. Features the device does not know
// and features that are not writable at the time are reported in
// ApplyResult.Skipped, rejected writes in ApplyResult.Errors. Dependencies
// between features (GainAuto=Continuous makes Gain read-only) are not
// resolved automatically; WithPasses retries blocked features after other
// writes may have unblocked them.
package config
