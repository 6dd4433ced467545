package httpapi

import (
	"github.com/tinoosan/social/internal/storage/memory"
	"github.com/tinoosan/social/internal/storage/postgres"
	"github.com/tinoosan/social/internal/storage/sqlite"
)

// Compile-time assertions that every bundled store can back /readyz.
var (
	_ ReadyChecker = (*memory.Store)(nil)
	_ ReadyChecker = (*postgres.Store)(nil)
	_ ReadyChecker = (*sqlite.Store)(nil)
)
