package ports

// ModuleLayout locates the files of the analyzed application module
type ModuleLayout interface {
	ProjectPath() string
	ModulePath() string
	ModuleName() string

	// SourceRoot is the fallback code root
	SourceRoot() string

	// ResourceFiles lists files inside res subdirectories starting with prefix
	ResourceFiles(prefix string, match func(name string) bool) ([]string, error)

	// ReportFile returns the static-analysis report, or "" if there is none
	ReportFile() (string, error)

	// SourceFiles enumerates indexable files below roots
	SourceFiles(roots []string, extensions []string) ([]string, error)
}
