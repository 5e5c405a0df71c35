package fswatcher

import (
	"path/filepath"

	fsnotify "github.com/fsnotify/fsnotify"
)

// Watches a single file. The parent directory is watched so the file can be replaced (editors often save by renaming a temporary file).
type FileWatcher struct {
	w      *fsnotify.Watcher
	name   string
	events chan interface{}
	opMask Op
}

func NewFileWatcher(name string) (*FileWatcher, error) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return nil, err
	}
	w0, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w0.Add(filepath.Dir(abs)); err != nil {
		w0.Close()
		return nil, err
	}
	w := &FileWatcher{
		w:      w0,
		name:   abs,
		events: make(chan interface{}),
		opMask: Create | Modify | Rename,
	}
	go w.eventLoop()
	return w, nil
}

//----------

func (w *FileWatcher) Close() error {
	return w.w.Close()
}

func (w *FileWatcher) OpMask() *Op {
	return &w.opMask
}

// Emits *Event or error values. Closed after Close.
func (w *FileWatcher) Events() <-chan interface{} {
	return w.events
}

//----------

func (w *FileWatcher) eventLoop() {
	defer close(w.events)
	for {
		select {
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			w.events <- err
		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.name {
				continue
			}
			op := translateOp(ev.Op)
			if op&w.opMask > 0 {
				w.events <- &Event{Op: op, Name: w.name}
			}
		}
	}
}

func translateOp(fop fsnotify.Op) Op {
	var op Op
	if fop&fsnotify.Create > 0 {
		op.Add(Create)
	}
	if fop&fsnotify.Write > 0 {
		op.Add(Modify)
	}
	if fop&fsnotify.Remove > 0 {
		op.Add(Remove)
	}
	if fop&fsnotify.Rename > 0 {
		op.Add(Rename)
	}
	if fop&fsnotify.Chmod > 0 {
		op.Add(Attrib)
	}
	return op
}
