package catalog

// SupportedVersion is the only catalog schema version understood.
const SupportedVersion = "1"

// File represents the root of a YAML interface catalog.
type File struct {
	// Version of the catalog schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Interfaces lists the declared interfaces.
	Interfaces []Definition `yaml:"interfaces"`
}

// Definition declares one interface.
type Definition struct {
	// Name of the interface, unique within the catalog.
	Name string `yaml:"name"`

	// Extends names the parent interface. Empty means Root.
	Extends string `yaml:"extends,omitempty"`

	// Description is free text carried along for documentation.
	Description string `yaml:"description,omitempty"`

	// Abstract lists methods a conforming subject must implement.
	Abstract []string `yaml:"abstract,omitempty"`

	// Optional lists methods a conforming subject may implement.
	Optional []string `yaml:"optional,omitempty"`

	// Defaults implements methods with constant results.
	Defaults map[string]any `yaml:"defaults,omitempty"`
}

// Find returns the definition called name, or nil.
func (f *File) Find(name string) *Definition {
	for i := range f.Interfaces {
		if f.Interfaces[i].Name == name {
			return &f.Interfaces[i]
		}
	}

	return nil
}
