package core

import (
	"sync"

	"golang.org/x/mod/semver"

	"github.com/go-reel/reel/pkg/errors"
	"github.com/go-reel/reel/pkg/log"
)

// Version is the substrate version, used by the registry's minimum-version
// gate.
const Version = "v0.9.0"

// Factory constructs a component of one registered type.
type Factory func(player Player, opts Options) (Component, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// LegacyComponents is the deprecated global namespace consulted when a name
// is missing from the registry. Populating it still works but logs a
// deprecation warning on every hit; new code registers through
// RegisterComponent.
var LegacyComponents = make(map[string]Factory)

// RegisterComponent stores factory under name and returns it. Registration
// happens at module load; names are append/overwrite-only and never
// removed. An empty name or nil factory is a programmer error and panics.
// A lower-case leading letter is tolerated with a warning and title-cased,
// so lookups from configuration names stay consistent.
func RegisterComponent(name string, factory Factory) Factory {
	if name == "" || factory == nil {
		panic(errors.Errorf("core.RegisterComponent", errors.KindConfig,
			"component registration requires a name and a factory"))
	}
	if titled := titleCase(name); titled != name {
		errors.Report(errors.Errorf("core.RegisterComponent", errors.KindMisuse,
			"component name %q should start with an upper-case letter; registering as %q", name, titled))
		name = titled
	}

	registryMu.Lock()
	registry[name] = factory
	registryMu.Unlock()
	return factory
}

// RegisterComponentMin registers factory only when the running substrate
// satisfies minVersion. It returns an error instead of registering when the
// substrate is too old, so optional component packs can degrade cleanly.
func RegisterComponentMin(name, minVersion string, factory Factory) (Factory, error) {
	if !semver.IsValid(minVersion) {
		return nil, errors.Errorf("core.RegisterComponentMin", errors.KindConfig,
			"invalid minimum version %q for component %q", minVersion, name)
	}
	if semver.Compare(Version, minVersion) < 0 {
		return nil, errors.Errorf("core.RegisterComponentMin", errors.KindConfig,
			"component %q requires substrate %s, running %s", name, minVersion, Version)
	}
	return RegisterComponent(name, factory), nil
}

// GetComponent returns the factory registered under name, or nil. Names
// found only in the deprecated LegacyComponents namespace are returned with
// a deprecation warning.
func GetComponent(name string) Factory {
	registryMu.RLock()
	factory := registry[name]
	registryMu.RUnlock()
	if factory != nil {
		return factory
	}

	if legacy := LegacyComponents[name]; legacy != nil {
		log.Default().Warn("component resolved through the legacy namespace; use RegisterComponent",
			log.String("component", name))
		return legacy
	}
	return nil
}

// RegisteredComponents returns the registered type names, unordered.
func RegisteredComponents() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

func init() {
	RegisterComponent("Component", func(player Player, opts Options) (Component, error) {
		return New(player, opts)
	})
}
