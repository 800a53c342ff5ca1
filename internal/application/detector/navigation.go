package detector

import (
	"context"
	"slices"

	"resprune/internal/application"
	"resprune/internal/domain"
)

const (
	androidID   = "android:id"
	androidName = "android:name"
)

// fragmentDeclaration selects navigation destinations by their "{id}-{class}" key
var fragmentDeclaration = application.Declaration{
	Tag:  "fragment",
	Name: fragmentKey,
}

func fragmentKey(el domain.Element) string {
	if el.Name != "fragment" {
		return ""
	}
	id, _ := el.Attr(androidID)
	class, _ := el.Attr(androidName)
	id = domain.ResourceID(id)
	if id == "" || class == "" {
		return ""
	}
	return application.NavigationKey(id, class)
}

// NewNavigation detects fragment destinations of navigation graphs. A
// destination is unused when its class is referenced only by its own source
// file, neither its id nor its generated Args class is referenced elsewhere,
// and no graph points at its id. The destination is cut
// from the graph and the class file deleted.
func NewNavigation(src Sources) *XMLDeclared {
	extract := func(_ string, el domain.Element) (string, bool) {
		return fragmentKey(el), true
	}
	return NewXMLDeclared("navigation", src, "navigation", extract, pruneDestinations(src))
}

func pruneDestinations(src Sources) Action {
	return func(_ context.Context, env Env, res domain.Resources) (domain.Count, error) {
		graphPaths, err := src.Layout.ResourceFiles("navigation", isXML)
		if err != nil {
			return domain.Count{}, err
		}

		// Destinations may share a fragment class
		var classFiles domain.ResourceSet
		unused := func(key string, owners domain.ResourceSet) bool {
			id, class, err := application.ParseNavigationKey(key)
			if err != nil {
				env.Logger.Warn("skipping navigation destination", env.Logger.Args("key", key, "error", err))
				return false
			}
			simple := domain.SimpleClassName(class)

			files, ok := env.Resolver.ReferencedOnlyBy(simple, func(path string) bool {
				return domain.IsClassFile(path, simple)
			})
			if !ok {
				return false
			}
			// The class file goes with the destination
			exclude := append(slices.Clone(owners), files...)
			if !env.Resolver.Unused([]string{id, simple + "Args"}, exclude...) {
				return false
			}
			if application.ReferencedInRemainder(src.Documents, graphPaths, fragmentDeclaration, key, []string{"@id/" + id}, env.Logger) {
				return false
			}
			for _, f := range files {
				classFiles = classFiles.Insert(f)
			}
			return true
		}

		count, err := application.DeleteUnusedDeclarations(src.Documents, res, env.DryRun, unused, fragmentDeclaration, env.Plan, env.Logger)
		if err != nil {
			return count, err
		}
		_, bytes := application.RemoveFiles(classFiles, env.DryRun, env.Plan, env.Logger)
		count.Bytes += bytes
		return count, nil
	}
}
