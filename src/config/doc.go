// Package config defines the configuration for a midline node.
//
// Regardless of how midline is started, directly from Go code or as a
// standalone process from the command line, it uses the Config object defined
// in this package to store and forward configuration options. On top of these
// options, midline relies on a data directory, defined by Config.DataDir,
// where the command-line wrapper looks for an optional midline.toml file, and
// where the Badger database lives when persistent storage is enabled.
package config
