package pipeline

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of \input files cached when nothing says otherwise.
const DefaultCacheSize = 64

// CachedLoader wraps load with an LRU cache holding up to size documents,
// so a file referenced by several \input directives is read once.
// Failed loads are not cached. A size of zero returns load unchanged.
func CachedLoader(load LoadFunc, size int) (LoadFunc, error) {
	if size == 0 {
		return load, nil
	}

	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("creating loader cache: %w", err)
	}

	return func(ref string) (string, error) {
		key := chainKey(ref)
		if content, ok := cache.Get(key); ok {
			return content, nil
		}

		content, err := load(ref)
		if err != nil {
			return "", err
		}
		cache.Add(key, content)
		return content, nil
	}, nil
}
