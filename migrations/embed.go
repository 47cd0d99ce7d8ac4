package migrations

import "embed"

// Files holds the forward-only SQLite schema migrations compiled into the
// binary. Postgres deployments build their schema from the gorm models.
//
//go:embed *.sql
var Files embed.FS
