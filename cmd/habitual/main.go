package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/habitual/internal/api"
	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/config"
	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/errors"
	"github.com/julianstephens/habitual/internal/keyring"
	"github.com/julianstephens/habitual/internal/logger"
)

var CLI struct {
	Version   kong.VersionFlag
	ConfigDir string        `help:"Configuration directory (config.yaml, logs)." type:"path" default:"~/.config/habitual"`
	APIURL    string        `name:"api-url" help:"Base URL of the habits API." env:"HABITUAL_API_URL"`
	Timezone  string        `help:"IANA timezone used for dates." env:"HABITUAL_TIMEZONE"`
	Timeout   time.Duration `help:"Timeout for each API call." env:"HABITUAL_TIMEOUT"`
	Debug     bool          `help:"Enable debug logging to stderr." env:"HABITUAL_DEBUG"`

	Summary cli.SummaryCmd `cmd:"" help:"Show the year-to-date habit calendar." default:"1"`
	Day     cli.DayCmd     `cmd:"" help:"Show the habits of a day."`
	Habit   cli.HabitCmd   `cmd:"" help:"Create and toggle habits."`
	Keyring cli.KeyringCmd `cmd:"" help:"Manage the API token in the OS keyring."`
	Config  cli.ConfigCmd  `cmd:"" help:"Manage the configuration file."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Habit tracker client for the habits API"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configPath := config.Path(CLI.ConfigDir)
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Format(err))
		os.Exit(1)
	}
	cfg = cfg.Apply(config.Overrides{
		APIURL:   CLI.APIURL,
		Timezone: CLI.Timezone,
		Timeout:  CLI.Timeout,
		Debug:    CLI.Debug,
	})

	if err := logger.Init(logger.Config{Debug: cfg.Debug, ConfigDir: CLI.ConfigDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}

	if err := cfg.Validate(); err != nil {
		errors.Fatal(err)
	}
	loc, err := cfg.Location()
	if err != nil {
		errors.Fatal(err)
	}

	opts := []api.Option{api.WithTimeout(cfg.Timeout)}
	if token := apiToken(); token != "" {
		opts = append(opts, api.WithToken(token))
	}
	client, err := api.New(cfg.APIURL, opts...)
	if err != nil {
		errors.Fatal(err)
	}

	appCtx := &cli.Context{
		API:        client,
		Config:     cfg,
		ConfigPath: configPath,
		Location:   loc,
	}

	logger.Debug("Running command", "command", ctx.Command(), "api_url", cfg.APIURL, "timezone", loc.String())
	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}

// apiToken prefers HABITUAL_API_TOKEN over the keyring. A missing token is
// not fatal; the API may be open.
func apiToken() string {
	if token := strings.TrimSpace(os.Getenv(constants.EnvAPIToken)); token != "" {
		return token
	}
	token, err := keyring.GetToken()
	if err != nil {
		logger.Debug("No API token from keyring", "error", err)
		return ""
	}
	return token
}
