package db

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	dialectsMu sync.RWMutex
	dialects   = make(map[string]Dialect)
)

func init() {
	RegisterDialect(mysqlDialect{}, "mysql", "mariadb")
	RegisterDialect(postgresDialect{}, "postgres", "postgresql")
	RegisterDialect(sqliteDialect{}, "sqlite", "sqlite3")
	RegisterDialect(oracleDialect{}, "oracle", "godror")
}

// RegisterDialect makes d available under each alias. Later registrations
// replace earlier ones.
func RegisterDialect(d Dialect, aliases ...string) {
	dialectsMu.Lock()
	defer dialectsMu.Unlock()

	if len(aliases) == 0 {
		aliases = []string{d.Name()}
	}
	for _, alias := range aliases {
		dialects[strings.ToLower(alias)] = d
	}
}

func lookupDialect(name string) (Dialect, error) {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()

	d, ok := dialects[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, name)
	}
	return d, nil
}

// SupportedDrivers lists every registered alias.
func SupportedDrivers() []string {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()

	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
