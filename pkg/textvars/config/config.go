package config

// Config is a decoded settings document. Accessors never fail: a missing
// key or a value of the wrong shape yields the supplied default.
type Config struct {
	data map[string]any
}

// New wraps data. A nil map behaves as an empty document.
func New(data map[string]any) Config {
	if data == nil {
		data = make(map[string]any)
	}
	return Config{data: data}
}

// String returns the string under key, or defaultVal.
func (c Config) String(key, defaultVal string) string {
	v, ok := c.data[key]
	if !ok {
		return defaultVal
	}
	if s, ok := v.(string); ok {
		return s
	}
	return defaultVal
}

// Int returns the whole number under key, or defaultVal. YAML yields int,
// JSON yields float64; a float with a fractional part is rejected.
func (c Config) Int(key string, defaultVal int) int {
	v, ok := c.data[key]
	if !ok {
		return defaultVal
	}
	switch val := v.(type) {
	case int:
		return val
	case int64:
		return int(val)
	case float64:
		if val == float64(int(val)) {
			return int(val)
		}
	}
	return defaultVal
}

// Any returns the value under key as decoded, or defaultVal.
func (c Config) Any(key string, defaultVal any) any {
	v, ok := c.data[key]
	if !ok {
		return defaultVal
	}
	return v
}

// List returns the list of objects stored under key.
// Elements that are not objects are skipped. Returns nil if key is missing.
//
// YAML decodes nested objects as map[string]any, so a document like
//
//	variables:
//	  - name: couponCode
//	    type: string
//
// yields one Config per list item.
func (c Config) List(key string) []Config {
	raw, ok := c.data[key].([]any)
	if !ok {
		return nil
	}
	out := make([]Config, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]any); ok {
			out = append(out, New(m))
		}
	}
	return out
}

// Has reports whether key is present, even with a nil value.
func (c Config) Has(key string) bool {
	_, ok := c.data[key]
	return ok
}

// Raw returns the decoded document. Callers must not modify it.
func (c Config) Raw() map[string]any {
	return c.data
}
