package memory

import (
	"github.com/tinoosan/social/internal/service/account"
	"github.com/tinoosan/social/internal/service/message"
)

// Compile-time interface assertions documenting which interfaces Store satisfies.
var (
	_ account.Store = (*Store)(nil)
	_ message.Store = (*Store)(nil)
)
