package project

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// maxBackups is the number of timestamped copies kept per plan file.
const maxBackups = 10

// WriteBackup copies the current content of the plan file into a
// timestamped sibling under a .backups directory, pruning the oldest
// copies beyond maxBackups.
func WriteBackup(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read plan for backup: %w", err)
	}

	backupDir := filepath.Join(filepath.Dir(path), ".backups")
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		return fmt.Errorf("failed to create backup directory: %w", err)
	}

	base := filepath.Base(path)
	stamp := time.Now().UTC().Format("20060102-150405")
	backupPath := filepath.Join(backupDir, fmt.Sprintf("%s.%s", base, stamp))
	if err := os.WriteFile(backupPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}

	return pruneBackups(backupDir, base)
}

// pruneBackups deletes the oldest backups of the given file beyond the
// retention limit. Timestamped names sort chronologically.
func pruneBackups(backupDir, base string) error {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		return err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), base+".") {
			names = append(names, e.Name())
		}
	}
	if len(names) <= maxBackups {
		return nil
	}
	sort.Strings(names)
	for _, name := range names[:len(names)-maxBackups] {
		if err := os.Remove(filepath.Join(backupDir, name)); err != nil {
			return err
		}
	}
	return nil
}

// ListBackups returns the available backup file paths for a plan,
// newest first.
func ListBackups(path string) ([]string, error) {
	backupDir := filepath.Join(filepath.Dir(path), ".backups")
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	base := filepath.Base(path)
	var out []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), base+".") {
			out = append(out, filepath.Join(backupDir, e.Name()))
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(out)))
	return out, nil
}
