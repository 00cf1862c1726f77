// Package main defines randgen, a command line tool that prints random
// values: strings drawn from character classes, integers, decimals, bytes and
// more. Output is reproducible when a seed is given.
package main

import (
	"fmt"
	"os"

	joonix "github.com/joonix/log"
	"github.com/prysmaticlabs/kit/cmd/flags"
	"github.com/prysmaticlabs/kit/config/params"
	"github.com/prysmaticlabs/kit/io/logs"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"github.com/wercker/journalhook"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	_ "go.uber.org/automaxprocs"
)

var log = logrus.WithField("prefix", "main")

func appFlags() []cli.Flag {
	return []cli.Flag{
		flags.SecureFlag,
		flags.SeedFlag,
		flags.CountFlag,
		flags.WorkersFlag,
		flags.ConfigFileFlag,
		flags.VerbosityFlag,
		flags.LogFormatFlag(),
		flags.LogFileName,
		flags.ProgressIntervalFlag,
		flags.ProgressBarFlag,
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "randgen"
	app.Usage = "prints random values, one per line"
	app.Flags = appFlags()
	app.Commands = commands()
	app.Before = func(ctx *cli.Context) error {
		// Persistent logging reads the active config.
		if err := configureRandConfig(ctx); err != nil {
			return err
		}
		return configureLogging(ctx)
	}
	return app
}

func configureLogging(ctx *cli.Context) error {
	verbosity := ctx.String(flags.VerbosityFlag.Name)
	level, err := logrus.ParseLevel(verbosity)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	// Values go to stdout; keep logs off it.
	logrus.SetOutput(ctx.App.ErrWriter)

	format := ctx.String(flags.LogFormatFlagName)
	switch format {
	case "text":
		formatter := new(prefixed.TextFormatter)
		formatter.TimestampFormat = "2006-01-02 15:04:05"
		formatter.FullTimestamp = true
		// If persistent log files are written - we disable the log messages coloring because
		// the colors are ANSI codes and seen as Gibberish in the log files.
		formatter.DisableColors = ctx.String(flags.LogFileName.Name) != ""
		logrus.SetFormatter(formatter)
	case "fluentd":
		logrus.SetFormatter(joonix.NewFormatter())
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case "journald":
		journalhook.Enable()
	default:
		return fmt.Errorf("unknown log format %s", format)
	}

	logFileName := ctx.String(flags.LogFileName.Name)
	if logFileName != "" {
		if err := logs.ConfigurePersistentLogging(logFileName); err != nil {
			log.WithError(err).Error("Failed to configuring logging to disk.")
		}
	}
	return nil
}

// configureRandConfig loads the config file, if any, applies the global flag
// overrides and activates the result.
func configureRandConfig(ctx *cli.Context) error {
	conf := params.DefaultRandConfig()
	if ctx.IsSet(flags.ConfigFileFlag.Name) {
		loaded, err := params.LoadRandConfigFile(ctx.String(flags.ConfigFileFlag.Name))
		if err != nil {
			return err
		}
		conf = loaded
	}
	if ctx.IsSet(flags.CountFlag.Name) {
		conf.Count = ctx.Int(flags.CountFlag.Name)
	}
	if ctx.IsSet(flags.WorkersFlag.Name) {
		conf.Workers = ctx.Int(flags.WorkersFlag.Name)
	}
	if ctx.IsSet(flags.ProgressIntervalFlag.Name) {
		conf.ProgressInterval = ctx.Duration(flags.ProgressIntervalFlag.Name)
	}
	if err := conf.Validate(); err != nil {
		return err
	}
	params.OverrideRandConfig(conf)
	return nil
}

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
