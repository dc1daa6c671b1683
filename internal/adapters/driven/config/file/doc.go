// Package file provides file-based implementations of driven port interfaces.
// These adapters read and persist configuration on the local filesystem.
//
// Adapters:
//   - ProjectSource: project configuration from package.json and .czrc files
//   - ConfigStore: TOML-based user configuration storage
package file
