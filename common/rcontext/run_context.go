package rcontext

import (
	"context"

	"github.com/avtools/soundwaves/common/config"
	"github.com/sirupsen/logrus"
)

func Initial(cfg *config.MainConfig) RunContext {
	return RunContext{
		Context: context.Background(),
		Log:     logrus.WithFields(logrus.Fields{"nocontext": true}),
		Config:  cfg,
	}.populate()
}

// RunContext carries the logger and resolved config through a single
// render pass.
type RunContext struct {
	context.Context

	Log    *logrus.Entry
	Config *config.MainConfig
}

func (c RunContext) populate() RunContext {
	c.Context = context.WithValue(c.Context, "sw.logger", c.Log)
	c.Context = context.WithValue(c.Context, "sw.config", c.Config)
	return c
}

func (c RunContext) ReplaceLogger(log *logrus.Entry) RunContext {
	ctx := context.WithValue(c.Context, "sw.logger", log)
	return RunContext{
		Context: ctx,
		Log:     log,
		Config:  c.Config,
	}
}

func (c RunContext) LogWithFields(fields logrus.Fields) RunContext {
	return c.ReplaceLogger(c.Log.WithFields(fields))
}
