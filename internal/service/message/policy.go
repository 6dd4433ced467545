package message

import (
	"fmt"
	"strings"
)

// PosterPolicy selects how Create decides that postedBy names a known poster.
type PosterPolicy string

const (
	// PosterPolicyAccount accepts any postedBy that is a stored account ID.
	PosterPolicyAccount PosterPolicy = "account"
	// PosterPolicyPriorMessage accepts postedBy only when that account already
	// has at least one message. Accounts with no messages cannot post.
	PosterPolicyPriorMessage PosterPolicy = "prior_message"
)

// ParsePosterPolicy maps a config value onto a PosterPolicy; empty means account.
func ParsePosterPolicy(s string) (PosterPolicy, error) {
	switch PosterPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PosterPolicyAccount:
		return PosterPolicyAccount, nil
	case PosterPolicyPriorMessage:
		return PosterPolicyPriorMessage, nil
	default:
		return "", fmt.Errorf("unknown posted-by policy %q", s)
	}
}
