package xmldoc

import (
	"fmt"
	"os"

	"resprune/internal/domain"
)

// TempSuffix is appended to a document path to name its rewritten copy
const TempSuffix = ".dest"

// Rewrite filters the document at path into a sibling temporary file.
// The original is never modified. The temporary file is discarded when
// dryRun is set or nothing was removed; otherwise its path is returned for
// the caller to move over the original.
func Rewrite(path, tag string, drop func(domain.Element) bool, dryRun bool) (*domain.RewriteResult, error) {
	result := &domain.RewriteResult{Path: path}

	in, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return nil, err
	}

	temp := path + TempSuffix
	out, err := os.Create(temp)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", temp, err)
	}

	removed, err := Filter(in, out, tag, drop)
	if err != nil {
		out.Close()
		os.Remove(temp)
		return nil, &ParseError{Path: path, Err: err}
	}
	if err := out.Close(); err != nil {
		os.Remove(temp)
		return nil, fmt.Errorf("failed to write %s: %w", temp, err)
	}

	rewritten, err := os.Stat(temp)
	if err != nil {
		os.Remove(temp)
		return nil, err
	}

	result.Removed = removed
	result.Delta = info.Size() - rewritten.Size()

	if dryRun || removed == 0 {
		if removed == 0 {
			result.Delta = 0
		}
		if err := os.Remove(temp); err != nil {
			return nil, fmt.Errorf("failed to discard %s: %w", temp, err)
		}
		return result, nil
	}

	result.TempPath = temp
	return result, nil
}
