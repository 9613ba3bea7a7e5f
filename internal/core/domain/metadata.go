package domain

import "strings"

// ParseMetadata parses key=value pairs into a map. The key must be
// non-empty; the value may itself contain '='. A nil map is returned for
// an empty input.
func ParseMetadata(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	metadata := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, Detail(ErrInvalidMetadata, "entry", pair)
		}
		metadata[key] = value
	}
	return metadata, nil
}
