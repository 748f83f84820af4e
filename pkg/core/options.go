package core

// Options is a component configuration value. It is produced once, by
// merging class-level defaults with caller overrides, and never mutated
// after construction.
//
// Keys recognized by the substrate itself: "id", "el", "name", "createEl",
// "initChildren", "reportTouchActivity", "children", "componentClass", and
// the propagated "playerOptions". Everything else is owned by the component
// type that declares it.
type Options map[string]any

// Merge deep-merges override into base and returns a new value; neither
// input is modified. Plain-object values (Options or map[string]any) merge
// recursively; every other value, arrays included, overwrites.
func Merge(base, override Options) Options {
	result := base.Dup()
	if result == nil {
		result = Options{}
	}
	for key, value := range override {
		if sub, ok := asOptions(value); ok {
			if existing, ok := asOptions(result[key]); ok {
				result[key] = Merge(existing, sub)
				continue
			}
			result[key] = sub.Dup()
			continue
		}
		result[key] = value
	}
	return result
}

// Dup returns a deep copy of o; nested plain objects are copied, all other
// values are shared.
func (o Options) Dup() Options {
	if o == nil {
		return nil
	}
	dup := make(Options, len(o))
	for key, value := range o {
		if sub, ok := asOptions(value); ok {
			dup[key] = sub.Dup()
			continue
		}
		dup[key] = value
	}
	return dup
}

// asOptions normalizes the two plain-object shapes that appear in practice:
// Options literals authored in Go and map[string]any produced by decoders.
func asOptions(value any) (Options, bool) {
	switch v := value.(type) {
	case Options:
		return v, true
	case map[string]any:
		return Options(v), true
	default:
		return nil, false
	}
}

// Bool returns the named boolean, or def when absent or not a bool.
func (o Options) Bool(key string, def bool) bool {
	if v, ok := o[key].(bool); ok {
		return v
	}
	return def
}

// String returns the named string, or "" when absent or not a string.
func (o Options) String(key string) string {
	v, _ := o[key].(string)
	return v
}

// Sub returns the named nested object, normalized to Options.
func (o Options) Sub(key string) (Options, bool) {
	return asOptions(o[key])
}
