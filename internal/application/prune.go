package application

import (
	"os"
	"slices"
	"sort"

	"github.com/pterm/pterm"

	"resprune/internal/domain"
	"resprune/internal/ports"
)

// SpellingFunc lists the textual forms a usage of name could take
type SpellingFunc func(name string) []string

// Predicate decides whether a candidate group is unused. owners are the
// files that declare or materialize it.
type Predicate func(name string, owners domain.ResourceSet) bool

// Declaration identifies the XML elements that declare candidates
type Declaration struct {
	Tag string

	// Name returns the candidate name declared by el, or "" if none
	Name func(el domain.Element) string
}

// BySpellings is unused when no spelling is referenced outside the owners
func BySpellings(resolver *UsageResolver, spellingsOf SpellingFunc) Predicate {
	return func(name string, owners domain.ResourceSet) bool {
		return resolver.Unused(spellingsOf(name), owners...)
	}
}

// ByDeclarationSpellings extends BySpellings to shared XML documents. The
// owner documents are searched with the candidate's own declaration removed,
// so a reference from a sibling declaration still counts.
func ByDeclarationSpellings(resolver *UsageResolver, docs ports.XMLDocuments, decl Declaration, spellingsOf SpellingFunc) Predicate {
	return func(name string, owners domain.ResourceSet) bool {
		spellings := spellingsOf(name)
		if !resolver.Unused(spellings, owners...) {
			return false
		}
		return !ReferencedInRemainder(docs, owners, decl, name, spellings, resolver.Logger())
	}
}

// ReferencedInRemainder reports whether any document in paths, read without
// the declaration of name, contains one of spellings. Unreadable documents and
// bad spellings count as references.
func ReferencedInRemainder(docs ports.XMLDocuments, paths []string, decl Declaration, name string, spellings []string, logger *pterm.Logger) bool {
	queries := make([]domain.Query, 0, len(spellings))
	for _, term := range spellings {
		q, err := domain.ParseQuery(term)
		if err != nil {
			logger.Error("query failed, keeping candidate", logger.Args("term", term, "error", err))
			return true
		}
		queries = append(queries, q)
	}

	declares := func(el domain.Element) bool { return decl.Name(el) == name }
	for _, path := range paths {
		text, err := docs.Remainder(path, decl.Tag, declares)
		if err != nil {
			logger.Error("cannot read declaring document, keeping candidate",
				logger.Args("path", path, "error", err))
			return true
		}
		tokens := domain.Tokenize(text)
		for _, q := range queries {
			if q.MatchedBy(tokens) {
				return true
			}
		}
	}
	return false
}

// DeleteUnused schedules deletion of every candidate group none of whose
// spellings is referenced. Sizes are measured before anything is scheduled.
// In dry-run the files are only logged.
func DeleteUnused(resolver *UsageResolver, candidates domain.Resources, dryRun bool, spellingsOf SpellingFunc, plan ports.DeletionPlan) domain.Count {
	return DeleteUnusedFiles(candidates, dryRun, BySpellings(resolver, spellingsOf), plan, resolver.Logger())
}

// DeleteUnusedFiles removes whole files of the groups unused selects.
// Groups counts unused groups and Files their backing files.
func DeleteUnusedFiles(candidates domain.Resources, dryRun bool, unused Predicate, plan ports.DeletionPlan, logger *pterm.Logger) domain.Count {
	var count domain.Count
	for _, name := range candidates.Names() {
		group := candidates[name]
		if !unused(name, group) {
			continue
		}
		count.Groups++
		files, bytes := RemoveFiles(group, dryRun, plan, logger)
		count.Files += files
		count.Bytes += bytes
	}
	return count
}

// RemoveFiles measures and schedules paths for deletion, returning how many
// were scheduled and their total size. Files that cannot be measured are skipped.
func RemoveFiles(paths []string, dryRun bool, plan ports.DeletionPlan, logger *pterm.Logger) (int, int64) {
	var (
		files int
		bytes int64
	)
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			logger.Warn("cannot stat candidate, skipping", logger.Args("path", path, "error", err))
			continue
		}
		files++
		bytes += info.Size()
		if dryRun {
			logger.Info("delete", logger.Args("path", path, "bytes", info.Size()))
			continue
		}
		plan.Remove(path)
	}
	return files, bytes
}

// DeleteUnusedDeclarations removes the declarations of unused candidates from
// their documents. Groups counts rewritten documents, Files removed
// declarations and Bytes the size difference. A document that fails to parse
// aborts the pass.
func DeleteUnusedDeclarations(docs ports.XMLDocuments, candidates domain.Resources, dryRun bool, unused Predicate, decl Declaration, plan ports.DeletionPlan, logger *pterm.Logger) (domain.Count, error) {
	var count domain.Count

	unusedSet := domain.Resources{}
	for _, name := range candidates.Names() {
		if !unused(name, candidates[name]) {
			continue
		}
		count.Files++
		for _, path := range candidates[name] {
			unusedSet.Add(name, path)
		}
	}

	byPath := unusedSet.ByPath()
	paths := make([]string, 0, len(byPath))
	for path := range byPath {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		names := byPath[path]
		drop := func(el domain.Element) bool {
			name := decl.Name(el)
			return name != "" && slices.Contains(names, name)
		}

		result, err := docs.Rewrite(path, decl.Tag, drop, dryRun)
		if err != nil {
			return count, err
		}
		count.Groups++
		count.Bytes += result.Delta

		if dryRun {
			logger.Info("rewrite", logger.Args("path", path, "remove", names, "bytes", result.Delta))
			continue
		}
		if result.TempPath != "" {
			plan.Replace(path, result.TempPath)
		}
	}
	return count, nil
}
