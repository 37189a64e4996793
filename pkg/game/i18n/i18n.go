// Package i18n holds the user-facing message catalog.
package i18n

import (
	"embed"
	"fmt"
	"sync"

	"github.com/leonelquinteros/gotext"
)

// DefaultLanguage is the catalog loaded when none is requested.
const DefaultLanguage = "en_GB"

//go:embed locale/*.po
var catalogs embed.FS

var (
	mu      sync.RWMutex
	current *gotext.Po
	once    sync.Once
)

// Load replaces the active catalog with the embedded one for lang.
func Load(lang string) error {
	data, err := catalogs.ReadFile("locale/" + lang + ".po")
	if err != nil {
		return fmt.Errorf("no catalog for %q: %w", lang, err)
	}
	po := gotext.NewPo()
	po.Parse(data)

	mu.Lock()
	current = po
	mu.Unlock()
	return nil
}

func catalog() *gotext.Po {
	once.Do(func() {
		mu.RLock()
		loaded := current != nil
		mu.RUnlock()
		if !loaded {
			_ = Load(DefaultLanguage)
		}
	})
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// T translates key and formats it with vars. Keys missing from the catalog
// are returned as-is, formatted the same way.
func T(key string, vars ...any) string {
	po := catalog()
	if po == nil {
		if len(vars) == 0 {
			return key
		}
		return fmt.Sprintf(key, vars...)
	}
	return po.Get(key, vars...)
}

// Has reports whether key has a translation in the active catalog.
func Has(key string) bool {
	po := catalog()
	return po != nil && po.IsTranslated(key)
}
