// Package config loads the runtime configuration of the jot tool from the
// environment.
package config

import (
	"fmt"
	"os"

	"go-simpler.org/env"

	"jot.lol"
	"jot.lol/chk"
	"jot.lol/config/keyvalue"
	"jot.lol/lol"
)

// C is the configuration for the jot tool. It is deliberately minimal; the
// interesting knobs are command line flags.
type C struct {
	AppName  string `env:"JOT_APP_NAME" default:"jot"`
	LogLevel string `env:"JOT_LOG_LEVEL" default:"info" usage:"off|fatal|error|warn|info|debug|trace"`
}

// New loads the configuration from the environment and applies it. The
// subcommands version, help and env short-circuit and exit.
func New() (c *C) {
	if len(os.Args) == 2 && os.Args[1] == "version" {
		fmt.Println(jot.Version)
		os.Exit(0)
	}
	c = &C{}
	if err := env.Load(c, nil); chk.T(err) {
		return
	}
	if len(os.Args) == 2 && os.Args[1] == "help" {
		fmt.Printf("\nenvironment variables that configure %s\n\n", c.AppName)
		env.Usage(c, os.Stdout, nil)
		fmt.Println()
		os.Exit(0)
	}
	if len(os.Args) == 2 && os.Args[1] == "env" {
		keyvalue.PrintEnv(*c, os.Stdout)
		os.Exit(0)
	}
	lol.SetLogLevel(c.LogLevel)
	return
}
