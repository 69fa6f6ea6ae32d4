package main

import (
	"strings"
	"sync"

	"langid/internal/adapters/hfhub"
	"langid/internal/core/script"
	"langid/internal/modkit"
	"langid/internal/platform/config"
	"langid/internal/services/langid/module"
)

// commandContext carries the persistent flags and the lazily built pipeline
// shared by all subcommands of one invocation
type commandContext struct {
	modelPath string
	output    string

	pipelineOnce sync.Once
	pipeline     *module.Module
	pipelineErr  error
}

func (c *commandContext) root() config.Conf { return config.New() }

// options reads CORE_LANGID_* and applies flag overrides
func (c *commandContext) options() module.Options {
	opts := module.FromConfig(c.root().Prefix("CORE_"))
	if p := strings.TrimSpace(c.modelPath); p != "" {
		opts.Repo.ModelPath = p
	}
	return opts
}

func (c *commandContext) detector() (*script.Detector, error) {
	return script.New(c.options().Script)
}

func (c *commandContext) ensurePipeline() (*module.Module, error) {
	c.pipelineOnce.Do(func() {
		c.pipeline, c.pipelineErr = module.New(modkit.Deps{Cfg: c.root()}, c.options())
	})
	return c.pipeline, c.pipelineErr
}

func (c *commandContext) hubConfig() hfhub.Config {
	return hfhub.FromConfig(c.root().Prefix("SERVICE_"))
}
