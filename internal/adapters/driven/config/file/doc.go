// Package file loads application settings from a TOML file in the
// apiscout config directory. Settings carry the discovery bounds and
// the scoring weight table; missing values fall back to defaults so a
// fresh install works without any configuration.
package file
