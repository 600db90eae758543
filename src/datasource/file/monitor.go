// monitor.go
package file

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileMonitor 监控数据集源文件的变化
// 数据集在进程内只加载一次, 源文件被改写时只能提示重启,
// 不会使缓存失效
type FileMonitor struct {
	dataPath string
	watcher  *fsnotify.Watcher
	lastMod  time.Time
	mu       sync.Mutex
}

func NewFileMonitor(dataPath string) (*FileMonitor, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// 监控所在目录, 覆盖编辑器先删后建的写入方式
	if err := watcher.Add(filepath.Dir(dataPath)); err != nil {
		watcher.Close()
		return nil, err
	}

	return &FileMonitor{
		dataPath: dataPath,
		watcher:  watcher,
	}, nil
}

// Watch 阻塞处理文件事件, 数据文件每次被改写时调用一次handler
func (m *FileMonitor) Watch(handler func(string)) error {
	for {
		select {
		case event, ok := <-m.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(m.dataPath) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			info, err := os.Stat(event.Name)
			if err != nil {
				continue
			}

			m.mu.Lock()
			if info.ModTime().After(m.lastMod) {
				m.lastMod = info.ModTime()
				go handler(event.Name)
			}
			m.mu.Unlock()
		case err, ok := <-m.watcher.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}

func (m *FileMonitor) Close() error {
	return m.watcher.Close()
}
