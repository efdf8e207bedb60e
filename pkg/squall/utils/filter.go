package utils

// A filter that matches scenario names.
type StringFilter struct {
	emptyIsAny bool
	contents   map[string]bool
}

func NewStringFilterFromSlice(slice []string) *StringFilter {
	contents := make(map[string]bool)
	for _, item := range slice {
		contents[item] = true
	}

	return &StringFilter{true, contents}
}

// Force the filter to match nothing if it is empty.
func (f *StringFilter) SetStrict() {
	f.emptyIsAny = false
}

func (f *StringFilter) Match(item string) bool {
	if len(f.contents) == 0 {
		return f.emptyIsAny
	}

	return f.contents[item]
}

func (f *StringFilter) MatchAny(items []string) bool {
	if len(f.contents) == 0 {
		return f.emptyIsAny
	}

	for _, item := range items {
		if f.Match(item) {
			return true
		}
	}

	return false
}
