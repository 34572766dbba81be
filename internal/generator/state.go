package generator

// State is a step of a generation run.
type State int

const (
	Validating State = iota
	DirectoryCreated
	StructureBuilt
	FilesEmitted
	CommonFilesEmitted
	DependenciesEmitted
	TestsEmitted
	DockerEmitted
	Done
	RolledBack
)

var stateNames = [...]string{
	Validating:          "Validating",
	DirectoryCreated:    "DirectoryCreated",
	StructureBuilt:      "StructureBuilt",
	FilesEmitted:        "FilesEmitted",
	CommonFilesEmitted:  "CommonFilesEmitted",
	DependenciesEmitted: "DependenciesEmitted",
	TestsEmitted:        "TestsEmitted",
	DockerEmitted:       "DockerEmitted",
	Done:                "Done",
	RolledBack:          "RolledBack",
}

// String returns the state name.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "Unknown"
	}
	return stateNames[s]
}

// Terminal reports whether no further transition follows s.
func (s State) Terminal() bool {
	return s == Done || s == RolledBack
}
