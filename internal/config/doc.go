// Package config loads linkdraw settings.
//
// Settings are read from a TOML file (the primary format) or a YAML file,
// chosen by extension. Fields absent from the file keep their defaults,
// and a missing file yields the defaults. Unknown keys are parse errors so
// typos surface instead of being ignored.
//
// Example linkdraw.toml:
//
//	[editor]
//	node_radius = 10
//	start_policy = "reject"
//
//	[theme]
//	link_marked = "#ff5555"
//
//	[log]
//	level = "debug"
//	file = "/tmp/linkdraw.log"
//
// A Watcher reloads the file when it changes on disk.
package config
