package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce 同一文件的连续事件合并间隔
const reloadDebounce = 100 * time.Millisecond

// Watcher 监视磁盘上的 battle.yaml，修改后解析并通过 Updates 交给主循环
//
// 监视 goroutine 从不接触模拟状态：它只发送解析好的配置，
// 由 App.Update 在帧开始时取走并应用。
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher

	// Updates 最新的有效配置（容量 1，旧值被新值覆盖）
	Updates chan BattleConfig
	// Errors 读取或解析失败（容量 1，满时丢弃）
	Errors chan error

	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher 开始监视配置文件（监视其所在目录，以便捕获编辑器的原子替换）
func NewWatcher(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:    abs,
		watcher: fw,
		Updates: make(chan BattleConfig, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.run()
	log.Printf("[ConfigWatcher] Watching %s", abs)
	return w, nil
}

// Close 停止监视，可重复调用
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	defer close(w.Updates)
	defer close(w.Errors)

	var last time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			now := time.Now()
			if now.Sub(last) < reloadDebounce {
				continue
			}
			last = now
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.report(err)
		case <-w.closeCh:
			return
		}
	}
}

// reload 读取并解析配置，无效的配置只报告错误，不会发送
func (w *Watcher) reload() {
	data, err := os.ReadFile(w.path)
	if err != nil {
		w.report(fmt.Errorf("failed to read %s: %w", w.path, err))
		return
	}
	cfg, err := ParseBattleConfig(data)
	if err != nil {
		w.report(err)
		return
	}

	log.Printf("[ConfigWatcher] Reloaded %s", w.path)
	for {
		select {
		case w.Updates <- cfg:
			return
		default:
		}
		// 丢弃尚未取走的旧配置
		select {
		case <-w.Updates:
		default:
		}
	}
}

func (w *Watcher) report(err error) {
	log.Printf("[ConfigWatcher] Warning: %v", err)
	select {
	case w.Errors <- err:
	default:
	}
}

// Drain 非阻塞地取出最新配置
func (w *Watcher) Drain() (BattleConfig, bool) {
	var (
		cfg BattleConfig
		got bool
	)
	for {
		select {
		case c, ok := <-w.Updates:
			if !ok {
				return cfg, got
			}
			cfg, got = c, true
		default:
			return cfg, got
		}
	}
}
