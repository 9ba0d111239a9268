package worker

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// documentExts lists the upload types the batch processor accepts.
var documentExts = map[string]bool{
	".txt":  true,
	".pdf":  true,
	".html": true,
	".htm":  true,
}

// CollectPaths resolves a batch input argument to document paths. A
// directory yields its supported files (sorted, non-recursive); a list
// file yields the paths it names, one per line.
func CollectPaths(arg string) ([]string, error) {
	info, err := os.Stat(arg)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", arg, err)
	}
	if info.IsDir() {
		return collectDir(arg)
	}
	if documentExts[strings.ToLower(filepath.Ext(arg))] {
		// A single document is a batch of one.
		return []string{arg}, nil
	}
	return readListFile(arg)
}

func collectDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if documentExts[strings.ToLower(filepath.Ext(e.Name()))] {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// readListFile reads document paths from a file, one per line. Blank lines
// and #-comments are skipped; duplicates are dropped.
func readListFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open list file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan list file: %w", err)
	}
	return paths, nil
}
