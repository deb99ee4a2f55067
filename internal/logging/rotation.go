package logging

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

const appName = "hrdesk"

// logFilePrefix marks files owned by rotation. Anything else in the log
// directory is left alone.
const logFilePrefix = appName + "_"

// rotate deletes the oldest log files in dir so that at most keep-1 remain,
// leaving room for the file about to be created. keep <= 0 disables rotation.
func rotate(dir string, keep int) error {
	if keep <= 0 {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	type logFile struct {
		path    string
		modTime time.Time
	}
	var files []logFile
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, logFilePrefix) || !strings.HasSuffix(name, ".log") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, logFile{path: filepath.Join(dir, name), modTime: info.ModTime()})
	}
	excess := len(files) - (keep - 1)
	if excess <= 0 {
		return nil
	}
	slices.SortFunc(files, func(a, b logFile) int {
		if c := a.modTime.Compare(b.modTime); c != 0 {
			return c
		}
		return strings.Compare(a.path, b.path)
	})
	for _, f := range files[:excess] {
		os.Remove(f.path)
	}
	return nil
}
