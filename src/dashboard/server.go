package dashboard

import (
	"FlightAnalytics/src/processor"
	"FlightAnalytics/src/storage"
	"FlightAnalytics/src/utils"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"time"
)

// Server 仪表板HTTP服务
// 视图结果通过JSON接口提供, 导出文件写入exportDir
type Server struct {
	pipeline  *processor.Pipeline
	logger    *storage.Logger
	exportDir string
}

func NewServer(pipeline *processor.Pipeline, logger *storage.Logger, exportDir string) *Server {
	return &Server{
		pipeline:  pipeline,
		logger:    logger,
		exportDir: exportDir,
	}
}

// Routes 注册全部路由
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/views", s.handleCatalog)
	mux.HandleFunc("GET /api/views/{view}", s.handleView)
	mux.HandleFunc("GET /api/views/{view}/export", s.handleExport)
	mux.HandleFunc("GET /logs", s.handleLogs)
	return mux
}

// ListenAndServe 启动HTTP服务, 阻塞直到服务退出
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("仪表板服务已启动, 监听 " + addr)
	return http.ListenAndServe(addr, s.Routes())
}

// catalogResponse 视图目录及采样范围
type catalogResponse struct {
	Views  []string     `json:"views"`
	Sample sampleBounds `json:"sample"`
}

type sampleBounds struct {
	Total   int `json:"total"`
	Min     int `json:"min"`
	Max     int `json:"max"`
	Default int `json:"default"`
}

// tablePayload 一张结果表格的JSON形式
// 数据行沿用字符串记录, 缺失值保持"NaN"字面量, 避免JSON无法表示NaN的问题
type tablePayload struct {
	Name    string     `json:"name"`
	Columns []string   `json:"columns"`
	Records [][]string `json:"records"`
}

type viewResponse struct {
	View       string         `json:"view"`
	SampleSize int            `json:"sample_size"`
	Tables     []tablePayload `json:"tables"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	total := s.pipeline.DatasetSize()
	min, max, def := processor.SampleBounds(total)

	writeJSON(w, http.StatusOK, catalogResponse{
		Views: processor.ViewNames(),
		Sample: sampleBounds{
			Total:   total,
			Min:     min,
			Max:     max,
			Default: def,
		},
	})
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	view := r.PathValue("view")
	sampleSize, err := s.sampleSizeParam(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	result, err := s.pipeline.Render(view, sampleSize)
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp := viewResponse{
		View:       result.View,
		SampleSize: result.SampleSize,
	}
	for _, table := range result.Tables {
		records := table.Frame.Records()
		resp.Tables = append(resp.Tables, tablePayload{
			Name:    table.Name,
			Columns: records[0],
			Records: records[1:],
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	view := r.PathValue("view")
	sampleSize, err := s.sampleSizeParam(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	result, err := s.pipeline.Render(view, sampleSize)
	if err != nil {
		s.writeError(w, err)
		return
	}

	var sheets []utils.Sheet
	for _, table := range result.Tables {
		sheets = append(sheets, utils.Sheet{Name: table.Name, Frame: table.Frame})
	}

	filename := fmt.Sprintf("%s_%s.xlsx", view, time.Now().Format("20060102150405"))
	filePath := filepath.Join(s.exportDir, filename)
	if err := utils.SaveSheets(filePath, sheets); err != nil {
		s.logger.Error("导出视图失败: " + err.Error())
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	s.logger.Info("视图 " + view + " 已导出: " + filePath)
	writeJSON(w, http.StatusOK, map[string]string{"file": filePath})
}

// handleLogs 以chunked方式持续推送日志条目
func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Transfer-Encoding", "chunked")

	logChan := s.logger.Subscribe()
	defer s.logger.Unsubscribe(logChan)

	for {
		select {
		case msg := <-logChan:
			if _, err := fmt.Fprint(w, msg); err != nil {
				return
			}
			if f, ok := w.(http.Flusher); ok {
				f.Flush()
			}
		case <-r.Context().Done():
			return
		}
	}
}

// sampleSizeParam 解析sample_size查询参数, 缺省时取滑块默认值
func (s *Server) sampleSizeParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("sample_size")
	if raw == "" {
		_, _, def := processor.SampleBounds(s.pipeline.DatasetSize())
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", processor.ErrInvalidSampleSize, raw)
	}
	return n, nil
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, processor.ErrUnknownView),
		errors.Is(err, processor.ErrInvalidSampleSize):
		status = http.StatusBadRequest
	case errors.Is(err, processor.ErrMissingColumn),
		errors.Is(err, processor.ErrEmptyAggregation):
		status = http.StatusUnprocessableEntity
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("视图请求失败: " + err.Error())
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
