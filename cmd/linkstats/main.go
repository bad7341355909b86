package main

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/avolkov/linkstats/internal/app"
	"github.com/avolkov/linkstats/internal/bmeta"
	"github.com/avolkov/linkstats/internal/config"
)

// Заполняются через ldflags при сборке.
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	bmeta.Print(buildVersion, buildDate, buildCommit)

	appConf := config.MustLoadConfig()

	a := app.Must(app.New(*appConf))

	a.Logger.Info("Starting server", zap.Any("config", appConf))
	if err := a.Run(); err != nil && !errors.Is(err, context.Canceled) {
		panic(err)
	}
}
