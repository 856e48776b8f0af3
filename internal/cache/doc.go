// Package cache provides the bounded LRU cache glyphatlas uses for laid-out
// lines and packed atlases.
//
//	c := cache.New[string, *text.Line](64)
//	line, err := c.GetOrCreate("key", func() (*text.Line, error) {
//	    return text.NewLine(src, 60, "key")
//	})
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
