package test

import (
	"go.uber.org/fx"
)

// LifecycleRecorder collects fx hooks without running them, so tests can
// invoke OnStart/OnStop directly and observe their effects.
type LifecycleRecorder struct {
	Hooks []fx.Hook
}

func (l *LifecycleRecorder) Append(h fx.Hook) {
	l.Hooks = append(l.Hooks, h)
}

// ShutdownerStub signals on Called when the code under test requests
// application shutdown. The send is non-blocking so repeated shutdowns
// cannot wedge the caller.
type ShutdownerStub struct {
	Called chan struct{}
}

func (s *ShutdownerStub) Shutdown(...fx.ShutdownOption) error {
	if s.Called != nil {
		select {
		case s.Called <- struct{}{}:
		default:
		}
	}
	return nil
}
