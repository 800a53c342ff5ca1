package mcp

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"resprune/internal/adapters/filesystem"
	"resprune/internal/application/commands"
	"resprune/internal/bootstrap"
	"resprune/internal/domain"
)

// Opener opens the analyzed module for the duration of one tool call
type Opener func() (*bootstrap.Workspace, error)

// Tools serves resprune over MCP. Calls are serialized because the
// reference index has a single writer.
type Tools struct {
	open Opener
	mu   sync.Mutex
}

// RegisterTools adds every resprune tool to the MCP server.
func RegisterTools(s *server.MCPServer, open Opener) *Tools {
	t := &Tools{open: open}
	s.AddTool(isReferencedTool(), t.isReferenced)
	s.AddTool(findUnusedTool(), t.findUnused)
	s.AddTool(indexStatusTool(), t.indexStatus)
	s.AddTool(refreshIndexTool(), t.refreshIndex)
	s.AddTool(detectLargeTool(), t.detectLarge)
	return t
}

// withWorkspace runs fn on a freshly opened workspace
func (t *Tools) withWorkspace(fn func(ws *bootstrap.Workspace) (*mcp.CallToolResult, error)) (*mcp.CallToolResult, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	ws, err := t.open()
	if err != nil {
		return toolError(err)
	}
	defer ws.Close()
	return fn(ws)
}

// --- is_referenced ---

func isReferencedTool() mcp.Tool {
	return mcp.NewTool("is_referenced",
		mcp.WithDescription("Check whether a term (resource name, R accessor, class name) appears in any indexed source file of the module. Returns the referencing files."),
		mcp.WithString("term",
			mcp.Description("Search term, e.g. ic_logo, R.drawable.ic_logo or \"ActivityMainBinding\""),
			mcp.Required(),
		),
		mcp.WithBoolean("refresh",
			mcp.Description("Refresh the index from git before searching (default true)"),
			mcp.DefaultBool(true),
		),
	)
}

func (t *Tools) isReferenced(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	term := req.GetString("term", "")
	if term == "" {
		return toolError(fmt.Errorf("term is required"))
	}
	refresh := req.GetBool("refresh", true)

	return t.withWorkspace(func(ws *bootstrap.Workspace) (*mcp.CallToolResult, error) {
		if refresh {
			if _, err := ws.RefreshCommand().Execute(ctx); err != nil {
				return toolError(err)
			}
		}
		result, err := commands.NewQueryCommand(ws.Index, term).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(formatQuery(result, ws.Config.Project)), nil
	})
}

func formatQuery(result *commands.QueryResult, root string) string {
	if !result.Referenced {
		return fmt.Sprintf("%q is not referenced (tokens: %s)", result.Term, strings.Join(result.Tokens, " "))
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%q is referenced by %d files:\n", result.Term, len(result.Sources))
	for _, src := range result.Sources {
		fmt.Fprintf(&sb, "  %s\n", relative(root, src))
	}
	return sb.String()
}

// --- find_unused ---

func findUnusedTool() mcp.Tool {
	return mcp.NewTool("find_unused",
		mcp.WithDescription("Refresh the index and list unused resources without deleting anything. Files listed as 'delete' would be removed; 'rewrite' documents would have unused declarations cut out."),
		mcp.WithArray("detectors",
			mcp.Description("Detectors to run: navigation, layout, drawable, raw, color, dimen, report. Omit for all but report."),
			mcp.WithStringItems(),
		),
	)
}

func (t *Tools) findUnused(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	names := bootstrap.DetectorNames(true, req.GetStringSlice("detectors", nil))

	return t.withWorkspace(func(ws *bootstrap.Workspace) (*mcp.CallToolResult, error) {
		plan := filesystem.NewDeletionPlan()
		defer plan.Discard()

		removeCmd, err := ws.RemoveUnusedCommand(plan, false, names...)
		if err != nil {
			return toolError(err)
		}
		// Stage, then discard: rewrites are produced but never applied
		removeCmd.Stage = true
		result, err := removeCmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(formatUnused(result, plan.Entries(), ws.Config.Project)), nil
	})
}

func formatUnused(result *commands.RemoveUnusedResult, entries []domain.PlanEntry, root string) string {
	var sb strings.Builder
	for _, r := range result.Reports {
		fmt.Fprintf(&sb, "%-10s total %d unused %d files %d space %.2f MB\n",
			r.Detector, r.Total, r.Count.Groups, r.Count.Files, r.Count.Megabytes())
		for _, name := range r.Listed {
			fmt.Fprintf(&sb, "  listed %s\n", name)
		}
	}
	if len(entries) == 0 {
		sb.WriteString("No unused resources found.\n")
		return sb.String()
	}
	sb.WriteByte('\n')
	for _, e := range entries {
		action := "delete "
		if e.Rewrite() {
			action = "rewrite"
		}
		fmt.Fprintf(&sb, "%s %s\n", action, relative(root, e.Path))
	}
	return sb.String()
}

// --- index_status ---

func indexStatusTool() mcp.Tool {
	return mcp.NewTool("index_status",
		mcp.WithDescription("Show the indexed revision, the current git revision and index size."),
	)
}

func (t *Tools) indexStatus(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.withWorkspace(func(ws *bootstrap.Workspace) (*mcp.CallToolResult, error) {
		result, err := commands.NewIndexStatusCommand(ws.Index, ws.State, ws.VCS, ws.Logger).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(formatStatus(result)), nil
	})
}

func formatStatus(result *commands.IndexStatusResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "indexed revision: %s\n", orNone(result.State.Revision))
	fmt.Fprintf(&sb, "current revision: %s\n", orNone(result.CurrentRevision))
	fmt.Fprintf(&sb, "documents: %d\ntokens: %d\n", result.Stats.Documents, result.Stats.Tokens)
	switch {
	case result.NeedsRebuild:
		sb.WriteString("status: outdated format, next refresh rebuilds\n")
	case result.UpToDate:
		sb.WriteString("status: up to date\n")
	default:
		sb.WriteString("status: stale\n")
	}
	return sb.String()
}

// --- refresh_index ---

func refreshIndexTool() mcp.Tool {
	return mcp.NewTool("refresh_index",
		mcp.WithDescription("Bring the reference index up to the current git revision."),
	)
}

func (t *Tools) refreshIndex(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.withWorkspace(func(ws *bootstrap.Workspace) (*mcp.CallToolResult, error) {
		result, err := ws.RefreshCommand().Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if result.Skipped {
			return mcp.NewToolResultText("Index already at " + orNone(result.NewRevision)), nil
		}
		s := result.Stats
		return mcp.NewToolResultText(fmt.Sprintf("Refreshed to %s: %d added, %d updated, %d deleted, %d missing in %s",
			orNone(result.NewRevision), s.Added, s.Updated, s.Deleted, s.Missing, s.Duration)), nil
	})
}

// --- detect_large ---

func detectLargeTool() mcp.Tool {
	return mcp.NewTool("detect_large",
		mcp.WithDescription("List bitmap resources whose decoded size (width x height) exceeds a pixel threshold."),
		mcp.WithNumber("threshold",
			mcp.Description("Pixel count threshold (default from configuration)"),
		),
	)
}

func (t *Tools) detectLarge(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.withWorkspace(func(ws *bootstrap.Workspace) (*mcp.CallToolResult, error) {
		threshold := int64(req.GetInt("threshold", int(ws.Config.LargeThreshold)))
		result, err := commands.NewDetectLargeCommand(ws.Layout, ws.Images, ws.Logger, threshold).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(result.Images) == 0 {
			return mcp.NewToolResultText(fmt.Sprintf("No image above %d pixels (%d inspected).", threshold, result.Inspected)), nil
		}
		var sb strings.Builder
		for _, img := range result.Images {
			fmt.Fprintf(&sb, "%dx%d  %s\n", img.Width, img.Height, relative(ws.Config.Project, img.Path))
		}
		return mcp.NewToolResultText(sb.String()), nil
	})
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func relative(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return path
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
