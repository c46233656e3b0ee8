// Package configs embeds the layered YAML configuration so the server binary
// runs without a configs directory on disk.
package configs

import "embed"

// Files holds base.yaml and every profile file.
//
//go:embed *.yaml
var Files embed.FS
