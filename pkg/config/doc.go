// Package config loads depscout's two configuration documents: the
// depscout.json priority package list (bootstrapped with defaults when
// absent) and the optional .depscout.toml tool settings.
package config
