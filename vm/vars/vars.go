// Package vars holds the environment a program runs against: a flat mapping
// from variable name to its current value, always stored as text.
package vars

import "github.com/google/btree"

type binding struct {
	name, val string
}

func (b binding) Less(than btree.Item) bool {
	return b.name < than.(binding).name
}

// Env is the variable store.  The zero value is not usable; call New.
type Env struct {
	t *btree.BTree
}

func New() *Env {
	return &Env{btree.New(8)}
}

// Set binds name to val, overwriting any previous binding.
func (e *Env) Set(name, val string) {
	e.t.ReplaceOrInsert(binding{name, val})
}

func (e *Env) Get(name string) (string, bool) {
	item := e.t.Get(binding{name: name})
	if item == nil {
		return "", false
	}
	return item.(binding).val, true
}

func (e *Env) Has(name string) bool {
	return e.t.Has(binding{name: name})
}

func (e *Env) Len() int {
	return e.t.Len()
}

// Each calls f for every binding in ascending order of name until f returns
// false.
func (e *Env) Each(f func(name, val string) bool) {
	e.t.Ascend(func(item btree.Item) bool {
		b := item.(binding)
		return f(b.name, b.val)
	})
}

// Names returns the names of all bindings in ascending order.
func (e *Env) Names() []string {
	xs := make([]string, 0, e.Len())
	e.Each(func(name, _ string) bool {
		xs = append(xs, name)
		return true
	})
	return xs
}
