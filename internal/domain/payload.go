package domain

// ReportPayload is the fully-resolved mapping handed to the template
// renderer. Every numeric value has already been formatted into a display
// string and every conditional section has an explicit boolean flag, so the
// renderer never encounters an undefined variable.
type ReportPayload map[string]any

// Section returns a nested map by key, or an empty map when the key is
// missing or holds something else. Formatters use this to walk payloads
// without caring which calculator produced them.
func (p ReportPayload) Section(key string) map[string]any {
	if v, ok := p[key]; ok {
		if m, ok := v.(map[string]any); ok {
			return m
		}
	}
	return map[string]any{}
}

// String returns a top-level or missing string value.
func (p ReportPayload) String(key string) string {
	if v, ok := p[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Flag returns a boolean payload value, false when absent.
func (p ReportPayload) Flag(key string) bool {
	if v, ok := p[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}
