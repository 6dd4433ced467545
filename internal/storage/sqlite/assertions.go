package sqlite

import (
	"github.com/tinoosan/social/internal/service/account"
	"github.com/tinoosan/social/internal/service/message"
)

var (
	_ account.Store = (*Store)(nil)
	_ message.Store = (*Store)(nil)
)
