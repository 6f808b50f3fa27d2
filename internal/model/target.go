package model

// TargetType is the kind of scan target.
type TargetType string

const (
	// TargetPlugin is a plugin directory (or single-file plugin).
	TargetPlugin TargetType = "plugin"
	// TargetTheme is a theme directory.
	TargetTheme TargetType = "theme"
)

// Valid reports whether t is a known target type.
func (t TargetType) Valid() bool {
	return t == TargetPlugin || t == TargetTheme
}

// Target identifies one plugin or theme that can be scanned.
type Target struct {
	Type TargetType `json:"type"`
	Slug string     `json:"slug"`
	Name string     `json:"name"`
	// Path is the resolved scan root. It is not sent to clients.
	Path Path `json:"-"`
}

// TargetList groups targets the way clients render them.
type TargetList struct {
	Plugins []Target `json:"plugins"`
	Themes  []Target `json:"themes"`
}
