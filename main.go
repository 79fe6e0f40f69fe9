package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"cilisou/internal/config"
	"cilisou/internal/server"
)

var (
	Version   = "1.0.0"
	BuildTime = "unknown"
)

func main() {
	configPath := flag.String("config", "config.yaml", "配置文件路径")
	showVersion := flag.Bool("version", false, "显示版本信息")
	flag.Parse()

	if *showVersion {
		fmt.Printf("cilisou v%s\n", Version)
		fmt.Printf("Build Time: %s\n", BuildTime)
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	initLogger(cfg)

	log.Printf("cilisou v%s 启动中...", Version)
	log.Printf("配置文件: %s", *configPath)

	srv, err := server.New(cfg)
	if err != nil {
		log.Fatalf("创建服务器失败: %v", err)
	}

	if err := srv.Start(); err != nil {
		log.Fatalf("启动服务器失败: %v", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("正在关闭服务器...")
	srv.Shutdown()
	log.Println("服务器已关闭")
}

func initLogger(cfg *config.Config) {
	logFile := cfg.Logging.File
	if logFile != "" && logFile != "/dev/stdout" {
		f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err == nil {
			log.SetOutput(f)
		}
	}

	log.SetFlags(log.LstdFlags | log.Lshortfile)
}
