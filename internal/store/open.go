package store

import (
	"context"
	"strings"
)

// OpenURL opens the backend named by target:
//
//	""                 SQLite at DefaultDBPath
//	"memory:"          in-process, nothing survives exit
//	"redis://..."      Redis server
//	"rediss://..."     Redis server over TLS
//	anything else      SQLite file path or DSN
func OpenURL(ctx context.Context, target string) (KV, error) {
	switch {
	case target == "memory:":
		return NewMemory(), nil
	case strings.HasPrefix(target, "redis://"), strings.HasPrefix(target, "rediss://"):
		return OpenRedis(ctx, target)
	case target == "":
		p, err := DefaultDBPath()
		if err != nil {
			return nil, err
		}
		return Open(p)
	default:
		if !strings.HasPrefix(target, "file:") {
			if err := ensureDir(target); err != nil {
				return nil, err
			}
		}
		return Open(target)
	}
}

// Describe returns a short human-readable name for target.
func Describe(target string) string {
	switch {
	case target == "memory:":
		return "memory"
	case strings.HasPrefix(target, "redis"):
		return "redis"
	case target == "":
		return "sqlite (default path)"
	default:
		return "sqlite " + target
	}
}
