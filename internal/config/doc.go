// Package config provides application configuration for the purchase order
// combiner.
//
// Configuration is layered: built-in defaults, then an optional config.yaml
// next to the working directory, then POCOMBINE_* environment variables.
// The merged result is validated before use. CLI flags are applied on top by
// the command layer.
package config
