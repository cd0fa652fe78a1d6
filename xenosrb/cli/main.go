// Copyright 2026 The gVisor Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cli is the main entrypoint for xenosrb.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/google/subcommands"

	"github.com/free60/xenosrb/pkg/log"
	"github.com/free60/xenosrb/xenosrb/cmd"
	"github.com/free60/xenosrb/xenosrb/cmd/util"
	"github.com/free60/xenosrb/xenosrb/config"
)

// version is reported by --version.
const version = "0.3.0"

var showVersion = flag.Bool("version", false, "show version and exit.")

// Main is the main entrypoint.
func Main() {
	// Register all commands.
	forEachCmd(subcommands.Register)

	// Register with the main command line.
	config.RegisterFlags(flag.CommandLine)
	config.RegisterConfigFileFlag(flag.CommandLine)

	// All subcommands must be registered before flag parsing.
	flag.Parse()

	if *showVersion {
		fmt.Fprintf(os.Stdout, "xenosrb version %s\n", version)
		os.Exit(0)
	}

	// Create a new Config from the flags.
	conf, err := config.NewFromFlags(flag.CommandLine)
	if err != nil {
		util.Fatalf("%v", err)
	}

	if conf.LogFilename != "" {
		// O_APPEND so that repeated commands share one log.
		f, err := os.OpenFile(conf.LogFilename, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			util.Fatalf("error opening log file %q: %v", conf.LogFilename, err)
		}
		util.ErrorLogger = f
	}

	subcommand := flag.CommandLine.Arg(0)
	if conf.Debug {
		log.SetLevel(log.Debug)
	}

	emitters := log.MultiEmitter{newEmitter(conf, os.Stderr)}
	if conf.DebugLog != "" {
		f, err := log.OpenFile(conf.DebugLog, os.O_WRONLY|os.O_CREATE|os.O_APPEND, log.FileOpts{
			Command: subcommand,
			Device:  conf.Device,
			Start:   time.Now(),
		})
		if err != nil {
			util.Fatalf("error opening debug log file in %q: %v", conf.DebugLog, err)
		}
		emitters = append(emitters, newEmitter(conf, f))
	}
	if len(emitters) == 1 {
		log.SetTarget(emitters[0])
	} else {
		log.SetTarget(&emitters)
	}

	const delimString = `**************** xenosrb ****************`
	log.Debugf(delimString)
	log.Debugf("Version %s, %s, %s, %d CPUs, %s, PID %d, UID %d", version, runtime.Version(), runtime.GOARCH, runtime.NumCPU(), runtime.GOOS, os.Getpid(), os.Getuid())
	log.Debugf("Args: %v", os.Args)
	if log.IsLogging(log.Debug) {
		conf.Log()
	}
	log.Debugf(delimString)

	// Call the subcommand and pass in the configuration.
	code := subcommands.Execute(context.Background(), conf)
	if code != subcommands.ExitSuccess {
		log.Debugf("Failure to execute command, status: %v", code)
	}
	os.Exit(int(code))
}

// forEachCmd invokes the passed callback for each command supported by
// xenosrb.
func forEachCmd(cb func(cmd subcommands.Command, group string)) {
	// Help and flags commands are generated automatically.
	cb(subcommands.HelpCommand(), "")
	cb(subcommands.FlagsCommand(), "")
	cb(subcommands.CommandsCommand(), "")

	cb(new(cmd.Probe), "")
	cb(new(cmd.Run), "")
	cb(new(cmd.Metrics), "")

	const debugGroup = "debug"
	cb(new(cmd.Bench), debugGroup)
	cb(new(cmd.Ucode), debugGroup)
}

func newEmitter(conf *config.Config, logFile io.Writer) log.Emitter {
	switch conf.LogFormat {
	case "text":
		return log.GoogleEmitter{Emitter: &log.Writer{Next: logFile}}
	case "json":
		return log.JSONEmitter{Writer: &log.Writer{Next: logFile}, Device: conf.Device}
	}
	util.Fatalf("invalid log format %q, must be 'text' or 'json'", conf.LogFormat)
	panic("unreachable")
}
