package prefabs

import (
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/milk9111/agilearcher/logger"
)

// SettleDelay is how long a directory must stay quiet before the edited
// files are reported. Saving one file often fires several writes, and a
// reload should only see the finished content.
const SettleDelay = 150 * time.Millisecond

// Watcher collects edited specs and scripts and hands them to the game loop
// in batches, one entry per file.
type Watcher struct {
	fs      *fsnotify.Watcher
	batches chan []string
	stop    chan struct{}
	once    sync.Once
}

// NewWatcher watches dirs. Every dir must exist.
func NewWatcher(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}
	w := newWatcher(fw)
	go w.run(fw.Events, fw.Errors, SettleDelay)
	return w, nil
}

func newWatcher(fw *fsnotify.Watcher) *Watcher {
	return &Watcher{fs: fw, batches: make(chan []string, 4), stop: make(chan struct{})}
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.stop)
		if w.fs != nil {
			err = w.fs.Close()
		}
	})
	return err
}

// Poll returns the files edited since the last call, sorted and without
// duplicates. It never blocks.
func (w *Watcher) Poll() []string {
	if w == nil {
		return nil
	}
	var out []string
	for {
		select {
		case batch := <-w.batches:
			out = append(out, batch...)
		default:
			slices.Sort(out)
			return slices.Compact(out)
		}
	}
}

// run gathers relevant events until nothing arrives for settle, then
// publishes the gathered paths as one batch.
func (w *Watcher) run(events <-chan fsnotify.Event, errs <-chan error, settle time.Duration) {
	pending := make(map[string]struct{})
	var quiet <-chan time.Time
	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			if !relevant(event) {
				continue
			}
			pending[filepath.Clean(event.Name)] = struct{}{}
			quiet = time.After(settle)
		case <-quiet:
			quiet = nil
			batch := make([]string, 0, len(pending))
			for name := range pending {
				batch = append(batch, name)
			}
			clear(pending)
			select {
			case w.batches <- batch:
			case <-w.stop:
				return
			}
		case err, ok := <-errs:
			if !ok {
				return
			}
			logger.Log.WithError(err).Warn("prefab watcher")
		case <-w.stop:
			return
		}
	}
}

// relevant keeps writes and creations of specs and scripts. Editors that
// save atomically create the target by rename, which arrives as Create on
// the final name; removals and renames away leave nothing to reload.
func relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	switch strings.ToLower(filepath.Ext(event.Name)) {
	case ".yaml", ".yml", ".tengo":
		return true
	}
	return false
}
