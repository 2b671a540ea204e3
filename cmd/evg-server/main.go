package main

import (
	"flag"
	"log"
	"os"

	bizConfig "github.com/S3b4sB0t3r0/evg-server/internal/config"
	"github.com/S3b4sB0t3r0/evg-server/internal/infra"
	"github.com/S3b4sB0t3r0/evg-server/internal/infra/consts"

	// Route and component registrations.
	_ "github.com/S3b4sB0t3r0/evg-server/internal/api"
	_ "github.com/S3b4sB0t3r0/evg-server/internal/registry_ext"
)

var Version = "v0.1.0"

func main() {
	cfgPath := flag.String("config", defaultConfigPath(), "config file path")
	flag.Parse()

	app := infra.NewAppWithBiz(env(), *cfgPath, bizConfig.GetBizConfig())
	if err := app.Run(); err != nil {
		log.Fatalf("app exited with error: %v", err)
	}
}

func env() string {
	if v := os.Getenv(consts.ENV_APP_ENV); v != "" {
		return v
	}
	return "dev"
}

func defaultConfigPath() string {
	if v := os.Getenv(consts.ENV_CONFIG_PATH); v != "" {
		return v
	}
	return consts.DEFAULT_CONFIG_PATH
}
