package config

// DeepMerge combines two nested documents without mutating either input.
// Keys whose values are mappings on both sides merge recursively; every
// other value, arrays included, is replaced wholesale by the override. Keys
// present only in base are retained unchanged.
func DeepMerge(base, override map[string]any) map[string]any {
	merged := make(map[string]any, len(base)+len(override))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range override {
		if overrideMap, ok := v.(map[string]any); ok {
			if baseMap, ok := merged[k].(map[string]any); ok {
				merged[k] = DeepMerge(baseMap, overrideMap)
				continue
			}
		}
		merged[k] = v
	}
	return merged
}
