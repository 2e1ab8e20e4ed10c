package accessor

// ProjectModel is the kind of file a handle opens.
type ProjectModel int

const (
	// ModelSolution opens generated .sln files.
	ModelSolution ProjectModel = iota
	// ModelUproject opens .uproject files directly.
	ModelUproject
)

// String returns the string representation of the model.
func (m ProjectModel) String() string {
	switch m {
	case ModelSolution:
		return "solution"
	case ModelUproject:
		return "uproject"
	default:
		return "unknown"
	}
}

// Extension is the file extension of the model's project file.
func (m ProjectModel) Extension() string {
	if m == ModelUproject {
		return ".uproject"
	}
	return ".sln"
}

// ParseModel maps a model name back to its value.
func ParseModel(s string) (ProjectModel, bool) {
	switch s {
	case "solution", "sln":
		return ModelSolution, true
	case "uproject":
		return ModelUproject, true
	default:
		return 0, false
	}
}
