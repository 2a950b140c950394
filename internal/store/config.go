package store

// Document is the top-level layout of the alias file.
type Document struct {
	Alias *AliasConfig `toml:"alias"`
}

// AliasConfig is the alias mapping persisted under the [alias] table.
type AliasConfig struct {
	// General maps alias name to command. Never nil after New or Decode.
	General map[string]string `toml:"general"`

	// Group maps group name to that group's aliases. Nil until the first
	// grouped alias is added.
	Group map[string]map[string]string `toml:"group,omitempty"`
}

// Entry is one alias as reported by List, Show and Entries.
type Entry struct {
	Group   string `json:"group,omitempty" yaml:"group,omitempty"`
	Name    string `json:"name" yaml:"name"`
	Command string `json:"command" yaml:"command"`
}

// Scope returns a human-readable scope label: "general" or "group <name>".
func (e Entry) Scope() string {
	if e.Group == "" {
		return "general"
	}
	return "group " + e.Group
}
