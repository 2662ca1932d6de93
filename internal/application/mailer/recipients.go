package mailer

import (
	"fmt"
	"strings"
)

// ContributorEmailsPath is where editor addresses live in the credentials store.
var ContributorEmailsPath = []string{"mailer", "contributor_emails"}

// Recipients reads addresses stored under path. The value may be a single
// address, a comma separated list or a YAML sequence.
func Recipients(secrets SecretStore, path ...string) []string {
	if secrets == nil {
		return nil
	}
	return splitAddresses(secrets.Dig(path...))
}

func splitAddresses(v any) []string {
	var raw []string
	switch val := v.(type) {
	case nil:
		return nil
	case string:
		raw = strings.Split(val, ",")
	case []string:
		raw = val
	case []any:
		for _, item := range val {
			if item != nil {
				raw = append(raw, fmt.Sprint(item))
			}
		}
	default:
		raw = []string{fmt.Sprint(val)}
	}

	out := make([]string, 0, len(raw))
	for _, addr := range raw {
		if addr = strings.TrimSpace(addr); addr != "" {
			out = append(out, addr)
		}
	}
	return out
}
