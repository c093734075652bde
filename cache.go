package stk

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"git.sr.ht/~mango/stk/ast"
)

type cacheKey struct {
	src    string
	strict bool
}

// Cache holds recently compiled programs keyed by their source.  It is safe
// for concurrent use and may be shared between interpreters; programs are
// never mutated once compiled.
type Cache struct {
	c *lru.Cache[cacheKey, ast.Program]
}

func NewCache(size int) (*Cache, error) {
	c, err := lru.New[cacheKey, ast.Program](size)
	if err != nil {
		return nil, err
	}
	return &Cache{c}, nil
}

// Compile returns the cached program for src, compiling and caching it on a
// miss.  Faults are not cached.
func (c *Cache) Compile(src string, strict bool) (ast.Program, error) {
	k := cacheKey{src, strict}
	if prog, ok := c.c.Get(k); ok {
		return prog, nil
	}

	prog, err := Compile(src, strict)
	if err != nil {
		return nil, err
	}
	c.c.Add(k, prog)
	return prog, nil
}

func (c *Cache) Len() int {
	return c.c.Len()
}
