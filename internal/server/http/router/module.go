package router

import "go.uber.org/fx"

// Module provides the gin engine with all routes registered.
var Module = fx.Provide(Setup)
