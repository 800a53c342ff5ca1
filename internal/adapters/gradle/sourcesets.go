package gradle

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"resprune/internal/ports"
)

// sourceSetLine matches report lines such as "Java sources: [app/src/main/java, app/src/main/kotlin]"
var sourceSetLine = regexp.MustCompile(`^[ \w\W]+?: \[([\w\W/ ,]+?)]`)

// SourceSets implements ports.SourceSetProvider with the Gradle sourceSets task
type SourceSets struct {
	projectPath string
	module      string

	// For mocking in tests
	commandContext func(ctx context.Context, name string, args ...string) *exec.Cmd
}

var _ ports.SourceSetProvider = (*SourceSets)(nil)

// NewSourceSets creates a provider running the wrapper inside projectPath
func NewSourceSets(projectPath, module string) *SourceSets {
	return &SourceSets{
		projectPath:    projectPath,
		module:         module,
		commandContext: exec.CommandContext,
	}
}

// SourceRoots runs "sh gradlew <module>:sourceSets" and returns the absolute
// directories it reports, de-duplicated and sorted.
func (s *SourceSets) SourceRoots(ctx context.Context) ([]string, error) {
	cmd := s.commandContext(ctx, "sh", "gradlew", s.module+":sourceSets")
	cmd.Dir = s.projectPath

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("gradle sourceSets failed: %w", err)
	}

	roots := ParseSourceSets(stdout.String())
	for i, root := range roots {
		if !filepath.IsAbs(root) {
			roots[i] = filepath.Join(s.projectPath, root)
		}
	}
	if len(roots) == 0 {
		return nil, fmt.Errorf("gradle sourceSets reported no directories")
	}
	return roots, nil
}

// ParseSourceSets extracts the bracketed directory lists of a sourceSets report
func ParseSourceSets(report string) []string {
	seen := make(map[string]bool)
	var dirs []string
	for _, line := range strings.Split(report, "\n") {
		match := sourceSetLine.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if match == nil {
			continue
		}
		for _, dir := range strings.Split(match[1], ", ") {
			dir = strings.TrimSpace(dir)
			if dir == "" || seen[dir] {
				continue
			}
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	sort.Strings(dirs)
	return dirs
}
