package cli

import (
	"fmt"
	"os"

	"github.com/julianstephens/habitual/internal/config"
)

type ConfigCmd struct {
	Init ConfigInitCmd `cmd:"" help:"Write a config file with the current settings."`
	Show ConfigShowCmd `cmd:"" help:"Show the effective configuration."`
}

type ConfigInitCmd struct {
	Force bool `help:"Overwrite an existing config file."`
}

func (c *ConfigInitCmd) Run(ctx *Context) error {
	if _, err := os.Stat(ctx.ConfigPath); err == nil && !c.Force {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", ctx.ConfigPath)
	}
	if err := config.Save(ctx.ConfigPath, ctx.Config); err != nil {
		return err
	}
	ctx.printf("Wrote %s\n", ctx.ConfigPath)
	return nil
}

type ConfigShowCmd struct{}

func (c *ConfigShowCmd) Run(ctx *Context) error {
	ctx.printf("config:   %s\n", ctx.ConfigPath)
	ctx.printf("api_url:  %s\n", ctx.Config.APIURL)
	ctx.printf("timezone: %s\n", ctx.Config.Timezone)
	ctx.printf("timeout:  %s\n", ctx.Config.Timeout)
	ctx.printf("debug:    %t\n", ctx.Config.Debug)
	return nil
}
