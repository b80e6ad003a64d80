// Package workspace locates the project root the roadmap document lives in.
package workspace

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// MarkerDir is the directory whose presence marks a project root when the
// tree is not under version control.
const MarkerDir = "roadmap"

// Resolve determines the project root. It prefers the git toplevel, falls
// back to walking up from the working directory looking for a roadmap/
// marker directory, and finally settles on the working directory itself.
func Resolve(ctx context.Context) string {
	if root := gitToplevel(ctx); root != "" {
		return root
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}

	if root := findMarker(cwd); root != "" {
		return root
	}
	return cwd
}

func gitToplevel(ctx context.Context) string {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--show-toplevel")
	out, err := cmd.Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

func findMarker(start string) string {
	current, err := filepath.Abs(start)
	if err != nil {
		return ""
	}
	for {
		if info, err := os.Stat(filepath.Join(current, MarkerDir)); err == nil && info.IsDir() {
			return current
		}
		parent := filepath.Dir(current)
		if parent == current {
			return ""
		}
		current = parent
	}
}
