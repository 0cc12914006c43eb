package history

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/zarlcorp/zfake/internal/document"
)

// Watch reports the kind whose history file changed under dataDir.
// Another process appending to history shows up here. The returned channel
// is closed when ctx is done or the watcher fails.
func Watch(ctx context.Context, dataDir string) (<-chan document.Kind, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch history: %w", err)
	}

	dir := filepath.Join(dataDir, historyDir)
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch history: add %s: %w", dir, err)
	}

	out := make(chan document.Kind, 1)
	go func() {
		defer close(out)
		defer w.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				kind, ok := kindFromPath(ev.Name)
				if !ok || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) {
					continue
				}
				select {
				case out <- kind:
				case <-ctx.Done():
					return
				}
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return out, nil
}

func kindFromPath(path string) (document.Kind, bool) {
	base := filepath.Base(path)
	if filepath.Ext(base) != ".json" {
		return 0, false
	}
	k, err := document.ParseKind(strings.TrimSuffix(base, ".json"))
	if err != nil {
		return 0, false
	}
	return k, true
}
