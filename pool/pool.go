package pool

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	. "github.com/ZenLiuCN/dlfcn"
	"github.com/ZenLiuCN/fn"
)

// Pool keeps libraries opened under a name, each name is opened once.
type Pool struct {
	Libraries map[string]Handle
	Loaded    []string // names in load order
	sync.RWMutex
}

var (
	ErrAlreadyLoad = errors.New("library already loaded")
	ErrNotLoad     = errors.New("library not loaded")
)

// Load open path under name, an empty path loads the main image of the process.
func (p *Pool) Load(name, path string) (err error) {
	p.Lock()
	defer p.Unlock()
	if _, ok := p.Libraries[name]; ok {
		return ErrAlreadyLoad
	}
	var h Handle
	if h, err = Open(path, RTLD_NOW); err != nil {
		return
	}
	p.Libraries[name] = h
	p.Loaded = append(p.Loaded, name)
	return
}

// Unload close the library loaded under name.
func (p *Pool) Unload(name string) error {
	p.Lock()
	defer p.Unlock()
	h, ok := p.Libraries[name]
	if !ok {
		return ErrNotLoad
	}
	delete(p.Libraries, name)
	p.Loaded = slices.DeleteFunc(p.Loaded, func(s string) bool { return s == name })
	return Close(h)
}

// Lookup resolve symbol inside the library loaded as name
func (p *Pool) Lookup(name, symbol string) (Sym, error) {
	p.RLock()
	defer p.RUnlock()
	h, ok := p.Libraries[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNotLoad, name)
	}
	return Lookup(h, symbol)
}

// Require fetch symbol from library, panics when missing
func (p *Pool) Require(name, symbol string) Sym {
	return fn.Panic1(p.Lookup(name, symbol))
}

// Names of loaded libraries, sorted.
func (p *Pool) Names() []string {
	p.RLock()
	defer p.RUnlock()
	v := fn.MapKeys(p.Libraries)
	slices.Sort(v)
	return v
}

// Close unload all libraries in reverse load order.
func (p *Pool) Close() error {
	p.Lock()
	defer p.Unlock()
	var errs []error
	for i := len(p.Loaded) - 1; i >= 0; i-- {
		name := p.Loaded[i]
		if err := Close(p.Libraries[name]); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
		delete(p.Libraries, name)
	}
	p.Loaded = p.Loaded[:0]
	return errors.Join(errs...)
}

// NewPool create new pool
func NewPool() *Pool {
	p := new(Pool)
	p.Libraries = make(map[string]Handle)
	return p
}
