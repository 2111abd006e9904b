// Package config loads the optional .easyinit.yaml project file and merges
// it with command line settings.
package config
