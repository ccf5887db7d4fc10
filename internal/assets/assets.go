package assets

import (
	"embed"
)

// Database migrations
//
//go:embed migrations
var Migrations embed.FS
