package sources

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/DerSchmale/injectiny/model"
	"github.com/DerSchmale/injectiny/task"
)

var _ = IModelSource((*FileModelSource)(nil))

type FileModelSource struct {
	Path           string
	Optional       bool
	ReloadOnChange bool
}

func (ss *FileModelSource) BuildModelProvider(_ *model.Model) IModelProvider {
	return NewFileModelProvider(ss)
}

var _ = IModelProvider((*FileModelProvider)(nil))

// FileModelProvider reads the raw model document from a file and hands the
// bytes to OnLoad; format-specific providers wrap it and set OnLoad to their
// parser. With ReloadOnChange the file is watched and rewrites re-trigger
// OnLoad followed by the reload notifier.
type FileModelProvider struct {
	*Provider

	path           string
	optional       bool
	reloadOnChange bool
	loaded         bool
	watcher        *fsnotify.Watcher

	OnLoad func(bytes []byte)
}

func NewFileModelProvider(source *FileModelSource) *FileModelProvider {
	return &FileModelProvider{
		Provider:       NewProvider(),
		path:           source.Path,
		optional:       source.Optional,
		reloadOnChange: source.ReloadOnChange,
		OnLoad:         func(bytes []byte) {},
	}
}

func (ss *FileModelProvider) Load() {
	if ss.loaded {
		if ss.reloadOnChange {
			return
		}

		ss.loadFile()
		ss.OnReload()
		return
	}
	ss.loadFile()
	ss.loaded = true

	if ss.reloadOnChange {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			log.Fatal(err)
		}
		ss.watcher = watcher

		go func() {
			for {
				select {
				case event, ok := <-watcher.Events:
					if !ok {
						return
					}
					if event.Has(fsnotify.Write | fsnotify.Create) {
						if pathEquals(event.Name, ss.path) {
							log.Printf("model watcher received Write or Create: %v", event.Name)
							task.Execute(func() {
								time.Sleep(500 * time.Millisecond)
								ss.loadFile()
								ss.OnReload()
							})
						}
					} else if event.Has(fsnotify.Rename | fsnotify.Remove) {
						if pathEquals(event.Name, ss.path) {
							log.Printf("model watcher received Rename or Remove: %v", event.Name)
							ss.Replace(nil)
							ss.OnReload()
						}
					}
				case err, ok := <-watcher.Errors:
					if !ok {
						return
					}
					log.Println("model watcher error:", err)
				}
			}
		}()

		err = watcher.Add(ss.path)
		if err != nil {
			parentDir := path.Dir(ss.path)

			log.Printf("model watcher cannot watch file(%v): %v, trying parent(%v)...", ss.path, err.Error(), parentDir)

			err = os.MkdirAll(parentDir, 0o755)
			if err != nil {
				log.Fatalf("create watcher path(%v) failed: %v", parentDir, err.Error())
			}
			err = watcher.Add(parentDir)
			if err != nil {
				log.Fatalf("cannot watch path(%v): %v", parentDir, err.Error())
			}
		}
	}
}

// Close stops the change watcher, if any; the watch goroutine exits once the
// watcher's channels close. Safe on providers that never watched.
func (ss *FileModelProvider) Close() error {
	if ss.watcher == nil {
		return nil
	}
	return ss.watcher.Close()
}

func (ss *FileModelProvider) loadFile() {
	if _, err := os.Stat(ss.path); errors.Is(err, os.ErrNotExist) {
		if !ss.optional {
			panic(fmt.Sprintf("model file not found: %v", ss.path))
		}
		ss.Replace(nil)
		return
	}

	data, err := os.ReadFile(ss.path)
	if err != nil {
		log.Printf("read model file error: %v", err.Error())
		return
	}

	ss.OnLoad(data)
}

func pathEquals(path1, path2 string) bool {
	p1, p2 := strings.Replace(path1, "\\", "/", -1), strings.Replace(path2, "\\", "/", -1)
	return p1 == p2
}
