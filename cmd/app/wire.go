//go:build wireinject
// +build wireinject

package main

import (
	"net/http"

	"github.com/google/wire"

	"github.com/yanqian/summarize-console/internal/bootstrap"
	"github.com/yanqian/summarize-console/internal/domain/auth"
	"github.com/yanqian/summarize-console/internal/domain/page"
	"github.com/yanqian/summarize-console/internal/domain/summarize"
	"github.com/yanqian/summarize-console/internal/infra/config"
	httpiface "github.com/yanqian/summarize-console/internal/interface/http"
	"github.com/yanqian/summarize-console/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideSummarizeConfig,
		providePageConfig,
		provideAuthConfig,
		provideHTTPClient,
		provideElementStore,
		provideInputReader,
		provideOutputWriter,
		provideTriggerSource,
		page.NewService,
		auth.NewService,
		summarize.NewHandler,
		wire.Bind(new(summarize.Doer), new(*http.Client)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
