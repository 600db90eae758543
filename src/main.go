package main

import (
	"FlightAnalytics/src/config"
	"FlightAnalytics/src/dashboard"
	"FlightAnalytics/src/datasource/file"
	"FlightAnalytics/src/processor"
	"FlightAnalytics/src/storage"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron"
)

func main() {
	jsonFolder := "./config"
	jsonFile := "config.json"
	dataJsonFile := "dataconfig.json"
	cfg, dcfg, err := config.LoadConfig(jsonFolder, jsonFile, dataJsonFile)
	if err != nil {
		log.Fatal("加载配置失败:", err)
	}

	// 初始化日志系统
	logger, err := storage.NewLogger(cfg.LogName)
	if err != nil {
		log.Fatal("初始化日志失败:", err)
	}

	// 加载数据集, 进程内只读一次
	store := file.NewStore(dcfg)
	dataset, err := store.Load(cfg.DataPath)
	if err != nil {
		logger.Fatal("加载数据集失败: " + err.Error())
		logger.Close()
		os.Exit(1)
	}
	logger.Info(fmt.Sprintf("数据集已加载: %s, 共%d条记录", cfg.DataPath, dataset.Nrow()))

	pipeline := processor.NewPipeline(dataset)

	// 数据文件变化监控: 缓存不失效, 只提示重启
	if cfg.MonitorData {
		monitor, err := file.NewFileMonitor(cfg.DataPath)
		if err != nil {
			logger.Error("创建文件监控失败: " + err.Error())
		} else {
			go func() {
				err := monitor.Watch(func(path string) {
					logger.Warning("数据文件已更新, 需重启服务以加载新数据: " + path)
				})
				if err != nil {
					logger.Error("文件监控异常退出: " + err.Error())
				}
			}()
		}
	}

	// 定时检查日志轮转
	c := cron.New()
	interval := time.Duration(cfg.LogInterval).String()
	cronSpec := fmt.Sprintf("@every %s", interval)
	err = c.AddFunc(cronSpec, func() {
		if err := logger.CheckRotate(cfg); err != nil {
			logger.Error("日志轮转失败: " + err.Error())
		}
	})
	if err != nil {
		logger.Error("创建定时任务失败: " + err.Error())
		return
	}
	c.Start()
	defer c.Stop()

	// 启动仪表板服务
	server := dashboard.NewServer(pipeline, logger, cfg.DataDir)
	go func() {
		if err := server.ListenAndServe(cfg.Dashboard.Addr); err != nil {
			logger.Fatal("仪表板服务退出: " + err.Error())
			os.Exit(1)
		}
	}()

	logger.Info(fmt.Sprintf("服务已启动(日志轮转检查间隔: %v), 按Ctrl+C退出", interval))
	waitForShutdown(logger)
}

func waitForShutdown(logger *storage.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	logger.Info("收到信号: " + sig.String() + ", 正在退出...")
	logger.Close()
	os.Exit(0)
}
