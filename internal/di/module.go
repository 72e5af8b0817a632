package di

import (
	"go.uber.org/fx"

	"github.com/freshdairy/freshdairy/internal/app"
	"github.com/freshdairy/freshdairy/internal/config"
	"github.com/freshdairy/freshdairy/internal/logger"
	"github.com/freshdairy/freshdairy/internal/pkg/auth"
	"github.com/freshdairy/freshdairy/internal/server/http/handlers"
	"github.com/freshdairy/freshdairy/internal/server/http/router"
	"github.com/freshdairy/freshdairy/internal/storage/postgres"
	"github.com/freshdairy/freshdairy/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(f *app.DairyFacade) handlers.DairyFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
