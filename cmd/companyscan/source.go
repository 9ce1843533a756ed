package main

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/companyscan"
)

// CollectTargets merges explicit arguments with the URL list file and
// deduplicates case-insensitively, preserving first-seen order. Local
// paths are normalized to absolute so the same snapshot referenced two
// ways collapses to one entry.
func CollectTargets(args []string, urlsFile string) ([]string, error) {
	collected := make([]string, 0, len(args))
	collected = append(collected, args...)

	if urlsFile != "" {
		lines, err := readLines(urlsFile)
		if err != nil {
			return nil, err
		}
		collected = append(collected, lines...)
	}

	seen := make(map[string]struct{}, len(collected))
	var out []string
	for _, t := range collected {
		t = strings.Trim(strings.TrimSpace(t), `"'`)
		if t == "" {
			continue
		}

		key := strings.ToLower(t)
		if companyscan.IsLocalRef(t) && !strings.Contains(t, "://") {
			if abs, err := filepath.Abs(t); err == nil {
				t = abs
				key = "file:" + strings.ToLower(abs)
			}
		}

		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}

	return out, nil
}

// readLines returns the non-empty lines of path. A missing list file is
// not an error: explicit arguments may be the only input.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			lines = append(lines, s)
		}
	}
	return lines, sc.Err()
}
