// Package gamedata provides the embedded level presets and helpers for loading them.
package gamedata

import "embed"

// dataFS holds levels.json and any other preset files shipped with the binary.
//
//go:embed *.json
var dataFS embed.FS
