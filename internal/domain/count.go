package domain

const bytesPerMegabyte = 1048576

// Count aggregates the outcome of a prune pass
type Count struct {
	Groups int   // Unused resource groups (or rewritten documents)
	Files  int   // Physical files (or declarations) removed
	Bytes  int64 // Space reclaimed
}

// Add returns the element-wise sum of c and o
func (c Count) Add(o Count) Count {
	return Count{
		Groups: c.Groups + o.Groups,
		Files:  c.Files + o.Files,
		Bytes:  c.Bytes + o.Bytes,
	}
}

// Megabytes returns the reclaimed space in MiB
func (c Count) Megabytes() float64 {
	return float64(c.Bytes) / bytesPerMegabyte
}

// PlanEntry is one staged mutation of a deletion plan. TempPath is empty for
// a removal and names the rewritten copy for a replacement.
type PlanEntry struct {
	Path     string
	TempPath string
}

// Rewrite reports whether the entry replaces path rather than removing it
func (e PlanEntry) Rewrite() bool {
	return e.TempPath != ""
}
