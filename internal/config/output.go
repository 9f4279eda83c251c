package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// JSONFormat enables JSON output instead of text
	JSONFormat bool

	// ShowBoard prints a board diagram after each move
	ShowBoard bool

	// Coordinates labels the diagram with files and ranks
	Coordinates bool

	// Maximum line length for move lists
	MaxLineLength uint
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ShowBoard:     true,
		Coordinates:   true,
		MaxLineLength: 80,
	}
}
