package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/web3events/landing/pkg/app"
	"github.com/web3events/landing/pkg/embedded"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	configPath := flag.String("config", "", "覆盖默认配置的 YAML 文件")
	seed := flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	persist := flag.Bool("persist", false, "将窗口设置保存到用户数据目录")
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	landingApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Seed:       *seed,
		Persist:    *persist,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	landingApp.ApplyWindowSettings()

	err = ebiten.RunGame(landingApp)
	landingApp.Close()
	if err != nil {
		log.Fatal(err)
	}
}
