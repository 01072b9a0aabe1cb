package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/acid/engine/core"
)

// Watcher reloads a scene file whenever its content changes on disk and
// publishes every successfully parsed scene on Scenes.
type Watcher struct {
	path string
	// digest of the content loaded last; events that leave it unchanged are dropped.
	digest uint64

	mutex    sync.Mutex
	isClosed bool

	done     chan struct{}
	stopped  chan struct{}
	fsnotify *fsnotify.Watcher
	scenes   chan *Scene
	errors   chan error
}

// NewWatcher starts watching path. The directory holding the file is
// watched so that editors replacing the file through a rename are seen.
func NewWatcher(path string) (*Watcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		fsWatch.Close()
		return nil, err
	}
	if err := fsWatch.Add(filepath.Dir(abs)); err != nil {
		fsWatch.Close()
		return nil, err
	}

	w := &Watcher{
		path:     abs,
		digest:   fileDigest(abs),
		fsnotify: fsWatch,
		scenes:   make(chan *Scene),
		errors:   make(chan error),
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
	go w.start()
	return w, nil
}

func (w *Watcher) Path() string {
	return w.path
}

// Scenes delivers each reloaded scene. It is closed when the watcher stops.
func (w *Watcher) Scenes() <-chan *Scene {
	return w.scenes
}

// Errors delivers load and watch errors. It is closed when the watcher stops.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

func (w *Watcher) Close() error {
	w.mutex.Lock()
	if w.isClosed {
		w.mutex.Unlock()
		return core.ErrWatcherClosed
	}
	w.isClosed = true
	w.mutex.Unlock()

	close(w.done)
	<-w.stopped
	return nil
}

func (w *Watcher) start() {
	defer close(w.stopped)
	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				w.shutdown()
				return
			}
			if filepath.Clean(e.Name) != w.path {
				continue
			}
			// Handle create or modify events
			if e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			s, changed, err := w.reload()
			if !changed {
				continue
			}
			if err != nil {
				if !w.publishError(err) {
					w.shutdown()
					return
				}
				continue
			}
			select {
			case w.scenes <- s:
			case <-w.done:
				w.shutdown()
				return
			}

		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				w.shutdown()
				return
			}
			core.LogError(err.Error())
			if !w.publishError(err) {
				w.shutdown()
				return
			}

		case <-w.done:
			w.shutdown()
			return
		}
	}
}

func fileDigest(path string) uint64 {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	return xxhash.Sum64(data)
}

func (w *Watcher) reload() (*Scene, bool, error) {
	data, err := os.ReadFile(w.path)
	if err != nil {
		return nil, true, fmt.Errorf("reading scene %s: %w", w.path, err)
	}
	// Editors that truncate before writing leave an empty file for a moment.
	if len(data) == 0 {
		return nil, false, nil
	}
	digest := xxhash.Sum64(data)
	if digest == w.digest {
		return nil, false, nil
	}
	w.digest = digest
	core.LogDebug("scene file %s changed (digest %016x)", w.path, digest)
	s, err := decode(w.path, data)
	return s, true, err
}

func (w *Watcher) publishError(err error) bool {
	select {
	case w.errors <- err:
		return true
	case <-w.done:
		return false
	}
}

func (w *Watcher) shutdown() {
	w.fsnotify.Close()
	close(w.scenes)
	close(w.errors)
}
