package storage

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/resurs/internal/storage/postgres"
	"github.com/julianstephens/resurs/internal/storage/sqlite"
)

// IsPostgres reports whether path is a PostgreSQL connection string.
func IsPostgres(path string) bool {
	return strings.HasPrefix(path, "postgres://") || strings.HasPrefix(path, "postgresql://")
}

// Open picks a provider for path: PostgreSQL URLs, .json files, or SQLite
// for everything else. Nothing is opened until Init or Load.
func Open(path string) Provider {
	switch {
	case IsPostgres(path):
		return postgres.New(path)
	case strings.EqualFold(filepath.Ext(path), ".json"):
		return NewJSONStore(ExpandPath(path))
	default:
		return sqlite.NewStore(ExpandPath(path))
	}
}

// ExpandPath resolves a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}

// HasEmbeddedCredentials reports whether a PostgreSQL connection string
// carries a password, either as URL userinfo or a DSN password= pair.
func HasEmbeddedCredentials(connStr string) bool {
	if IsPostgres(connStr) {
		u, err := url.Parse(connStr)
		if err != nil {
			return false
		}
		if u.User == nil {
			return false
		}
		_, hasPassword := u.User.Password()
		return hasPassword
	}

	for _, part := range strings.Fields(connStr) {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) == 2 && strings.EqualFold(strings.TrimSpace(kv[0]), "password") {
			return true
		}
	}
	return false
}
