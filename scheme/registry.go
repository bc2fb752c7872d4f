package scheme

import (
	"strings"
	"sync"

	"github.com/npillmayer/lipi/core"
	"github.com/npillmayer/schuko/tracing"
)

// Registry is a type for holding the mapping tables an application has
// loaded, indexed by scheme name and by the legacy font names the
// tables cover.
type Registry struct {
	sync.Mutex
	schemes map[string]*Table
	byFont  map[string]*Table
	def     *Table
}

var globalSchemeRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry is an application-wide singleton to hold the known
// mapping tables. Built-in scheme packages register themselves here.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalSchemeRegistry = NewRegistry()
	})
	return globalSchemeRegistry
}

func NewRegistry() *Registry {
	sr := &Registry{
		schemes: make(map[string]*Table),
		byFont:  make(map[string]*Table),
	}
	return sr
}

// Store pushes a table into the registry if it isn't contained yet.
//
// The table is stored under its normalized scheme name and under the
// normalized name of every font it declares. Keys already associated
// with a table will not be overridden. The first table stored becomes
// the registry's default scheme.
func (sr *Registry) Store(t *Table) {
	if t == nil {
		tracer().Errorf("registry cannot store null scheme")
		return
	}
	sr.Lock()
	defer sr.Unlock()
	name := NormalizeName(t.Name())
	if _, ok := sr.schemes[name]; !ok {
		tracer().Debugf("registry stores scheme %s as %s", t.Name(), name)
		sr.schemes[name] = t
	}
	for _, f := range t.Fonts() {
		fname := NormalizeName(f)
		if _, ok := sr.byFont[fname]; !ok {
			sr.byFont[fname] = t
		}
	}
	if sr.def == nil {
		sr.def = t
	}
}

// Scheme returns the table registered under a scheme name.
// Returns an error with code core.EMISSING if no table is known by that
// name.
func (sr *Registry) Scheme(name string) (*Table, error) {
	sr.Lock()
	defer sr.Unlock()
	if t, ok := sr.schemes[NormalizeName(name)]; ok {
		return t, nil
	}
	return nil, core.Error(core.EMISSING, "no mapping table for scheme %q", name)
}

// SchemeForFont returns the table covering a legacy font, identified by
// the font's name (as it appears in documents, e.g. "Kruti Dev 010").
func (sr *Registry) SchemeForFont(fontname string) (*Table, error) {
	sr.Lock()
	defer sr.Unlock()
	if t, ok := sr.byFont[NormalizeName(fontname)]; ok {
		return t, nil
	}
	return nil, core.Error(core.EMISSING, "no mapping table covers font %q", fontname)
}

// SetDefault makes t the table returned by Default.
func (sr *Registry) SetDefault(t *Table) {
	sr.Lock()
	defer sr.Unlock()
	sr.def = t
}

// Default returns the registry's default table, possibly nil.
func (sr *Registry) Default() *Table {
	sr.Lock()
	defer sr.Unlock()
	return sr.def
}

// LogSchemeList is a helper function to dump the list of known schemes
// in a registry to the trace-file (log-level Info).
func (sr *Registry) LogSchemeList() {
	sr.Lock()
	defer sr.Unlock()
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	tracer().Infof("--- registered schemes ---")
	for k, v := range sr.schemes {
		tracer().Infof("scheme [%s] = %d entries", k, v.Len())
	}
	for k, v := range sr.byFont {
		tracer().Infof("font   [%s] -> %s", k, v.Name())
	}
	tracer().Infof("--------------------------")
	tracer().SetTraceLevel(level)
}

// NormalizeName normalizes a scheme or font name for use as a registry
// key: surrounding space trimmed, inner spaces replaced, a file
// extension stripped, everything lowercase.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, " ", "_")
	if dot := strings.LastIndex(name, "."); dot > 0 {
		name = name[:dot]
	}
	return strings.ToLower(name)
}
