// loader.go
package file

import (
	"errors"
	"fmt"
	"sync"

	"FlightAnalytics/src/config"

	"github.com/go-gota/gota/dataframe"
)

// ErrDataUnavailable 表示数据集缺失或无法解析
// 该错误是致命的: 调用方必须停止后续渲染并向用户报告
var ErrDataUnavailable = errors.New("数据集不可用")

// Store 是按文件路径记忆化的数据集缓存
// 每个路径在进程生命周期内只读取一次, 之后返回同一个DataFrame实例,
// 数据集加载后视为只读, 不做失效处理
type Store struct {
	dcfg   *config.DataConfig
	mu     sync.Mutex
	frames map[string]*dataframe.DataFrame
}

func NewStore(dcfg *config.DataConfig) *Store {
	return &Store{
		dcfg:   dcfg,
		frames: make(map[string]*dataframe.DataFrame),
	}
}

// Load 返回路径对应的数据集, 首次调用时读取文件并缓存
func (s *Store) Load(path string) (dataframe.DataFrame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if df, ok := s.frames[path]; ok {
		return *df, nil
	}

	df, err := ReadDataFrame(path, s.dcfg)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}

	s.frames[path] = &df
	return df, nil
}

// Loaded 返回路径对应的数据集是否已在缓存中
func (s *Store) Loaded(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.frames[path]
	return ok
}
