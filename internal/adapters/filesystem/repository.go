package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"resprune/internal/domain"
	"resprune/internal/ports"
)

// Repository resolves the on-disk layout of one application module
type Repository struct {
	projectPath string
	modulePath  string
}

var _ ports.ModuleLayout = (*Repository)(nil)

// NewRepository creates a repository for module inside projectPath
func NewRepository(projectPath, module string) *Repository {
	// Expand ~ to home directory
	if strings.HasPrefix(projectPath, "~") {
		home, _ := os.UserHomeDir()
		projectPath = filepath.Join(home, projectPath[1:])
	}
	if abs, err := filepath.Abs(projectPath); err == nil {
		projectPath = abs
	}
	return &Repository{
		projectPath: projectPath,
		modulePath:  filepath.Join(projectPath, module),
	}
}

// ProjectPath returns the absolute project root
func (r *Repository) ProjectPath() string { return r.projectPath }

// ModulePath returns the absolute module root
func (r *Repository) ModulePath() string { return r.modulePath }

// ModuleName returns the module directory name
func (r *Repository) ModuleName() string { return filepath.Base(r.modulePath) }

// SourceRoot is the default code root used when the build system cannot report one
func (r *Repository) SourceRoot() string {
	return filepath.Join(r.modulePath, "src", "main")
}

// ResourceRoot returns the module's res directory
func (r *Repository) ResourceRoot() string {
	return filepath.Join(r.modulePath, "src", "main", "res")
}

// ReportsDir returns the directory holding static-analysis reports
func (r *Repository) ReportsDir() string {
	return filepath.Join(r.modulePath, "build", "reports")
}

// ResourceDirs returns the immediate subdirectories of the res root whose
// name starts with prefix, sorted. A missing res root yields no directories.
func (r *Repository) ResourceDirs(prefix string) ([]string, error) {
	entries, err := os.ReadDir(r.ResourceRoot())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read resources: %w", err)
	}

	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() && strings.HasPrefix(entry.Name(), prefix) {
			dirs = append(dirs, filepath.Join(r.ResourceRoot(), entry.Name()))
		}
	}
	sort.Strings(dirs)
	return dirs, nil
}

// ResourceFiles lists the files directly inside every res subdirectory
// starting with prefix whose base name satisfies match.
func (r *Repository) ResourceFiles(prefix string, match func(name string) bool) ([]string, error) {
	dirs, err := r.ResourceDirs(prefix)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", dir, err)
		}
		for _, entry := range entries {
			if entry.IsDir() || !match(entry.Name()) {
				continue
			}
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return files, nil
}

// ReportFile returns the first XML report (lexical order) in the reports
// directory, or an empty string if there is none.
func (r *Repository) ReportFile() (string, error) {
	entries, err := os.ReadDir(r.ReportsDir())
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read reports: %w", err)
	}

	// ReadDir returns entries sorted by filename
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".xml") {
			return filepath.Join(r.ReportsDir(), entry.Name()), nil
		}
	}
	return "", nil
}

// SourceFiles walks roots and returns every indexable file with one of the
// given extensions. Missing roots are skipped.
func (r *Repository) SourceFiles(roots []string, extensions []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	for _, root := range roots {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					return nil
				}
				return err
			}
			if d.IsDir() {
				// Skip hidden directories
				if path != root && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if seen[path] || !domain.Indexable(path, extensions) {
				return nil
			}
			seen[path] = true
			files = append(files, path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", root, err)
		}
	}

	sort.Strings(files)
	return files, nil
}
