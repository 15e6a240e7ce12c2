package keyset

// Extract flattens a nested translation document into the set of dot-joined
// paths to every leaf value. A value that is itself a mapping is a branch;
// anything else (string, number, bool, nil, list) is a leaf. The input is
// tree-shaped structured data, so no cycle guard is needed.
func Extract(doc map[string]any) Set {
	s := make(Set)
	extractInto(s, doc, "")
	return s
}

func extractInto(s Set, doc map[string]any, prefix string) {
	for key, value := range doc {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		switch v := value.(type) {
		case map[string]any:
			extractInto(s, v, path)
		case map[string]string:
			// Some decoders produce typed string maps for flat subtrees.
			for subKey := range v {
				s.Add(path + "." + subKey)
			}
		default:
			s.Add(path)
		}
	}
}
