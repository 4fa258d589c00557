package goquery

// ldString returns the named field of a JSON-LD object as a string,
// or "" if absent or not a string.
func ldString(obj map[string]any, key string) string {
	if v, ok := obj[key].(string); ok {
		return v
	}
	return ""
}

// ldNames collects person names from a JSON-LD author value, which may be
// a plain string, an object with a "name" field, or an array of either.
func ldNames(v any) []string {
	var names []string
	switch t := v.(type) {
	case string:
		if t != "" {
			names = append(names, t)
		}
	case map[string]any:
		if name := ldString(t, "name"); name != "" {
			names = append(names, name)
		}
	case []any:
		for _, item := range t {
			names = append(names, ldNames(item)...)
		}
	}
	return names
}
