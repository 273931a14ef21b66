// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/btcsuite/btcutil"
	"github.com/jessevdk/go-flags"
	"github.com/kaspanet/checkpointd/domain/checkpoints"
	"github.com/kaspanet/checkpointd/infrastructure/config"
	"github.com/kaspanet/checkpointd/infrastructure/logger"
	"github.com/kaspanet/checkpointd/version"
	"github.com/pkg/errors"
)

const (
	minCandidates         = 1
	maxCandidates         = 20
	defaultNumCandidates  = 5
	defaultLogFilename    = "findcheckpoint.log"
	defaultErrLogFilename = "findcheckpoint_err.log"
	defaultLogLevel       = "info"
)

var (
	defaultHomeDir = btcutil.AppDataDir("checkpointd", false)
	defaultDataDir = filepath.Join(defaultHomeDir, "data")
	defaultLogDir  = filepath.Join(defaultHomeDir, "logs")
)

// configFlags defines the configuration options for findcheckpoint.
//
// See parseConfig for details on the configuration load process.
type configFlags struct {
	ShowVersion   bool   `short:"V" long:"version" description:"Display version information and exit"`
	DataDir       string `short:"b" long:"datadir" description:"Location of the block index data directory"`
	LogDir        string `long:"logdir" description:"Directory to log output"`
	AddBlocks     string `short:"i" long:"addblocks" description:"File of block records to add to the block index first -- one block per line as <hash> <parent hash> <transaction count> <timestamp>"`
	DebugLevel    string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem>=<level>,... to set the log level for individual subsystems"`
	NumCandidates int    `short:"n" long:"numcandidates" description:"Max num of checkpoint candidates to show {1-20}"`
	Confirmations uint64 `short:"c" long:"confirmations" description:"Number of blocks that must be built on top of a checkpoint candidate"`
	UseGoOutput   bool   `short:"g" long:"gooutput" description:"Display the candidates using Go syntax that is ready to insert into the dagconfig checkpoint list"`
	config.NetworkFlags
	config.CheckpointFlags
}

// fileExists reports whether the named file or directory exists.
func fileExists(name string) bool {
	if _, err := os.Stat(name); err != nil {
		if os.IsNotExist(err) {
			return false
		}
	}
	return true
}

// parseConfig initializes and parses the config using command line options.
//
// The configuration proceeds as follows:
// 	1) Start with a default config with sane settings
// 	2) Parse the command line options
// 	3) Resolve the network and namespace the data and log directories by it
// 	4) Validate the remaining options and apply the debug level
func parseConfig(args []string) (*configFlags, error) {
	cfg := &configFlags{
		DataDir:       defaultDataDir,
		LogDir:        defaultLogDir,
		DebugLevel:    defaultLogLevel,
		NumCandidates: defaultNumCandidates,
		Confirmations: checkpoints.DefaultCandidateConfirmations,
	}
	parser := flags.NewParser(cfg, flags.PrintErrors|flags.HelpFlag)
	_, err := parser.ParseArgs(args)

	// Show the version and exit if the version flag was specified.
	if cfg.ShowVersion {
		appName := filepath.Base(os.Args[0])
		appName = strings.TrimSuffix(appName, filepath.Ext(appName))
		fmt.Println(appName, "version", version.Version())
		os.Exit(0)
	}

	if err != nil {
		return nil, err
	}

	funcName := "parseConfig"

	err = cfg.ResolveNetwork(parser)
	if err != nil {
		return nil, err
	}

	// Append the network type to the data and log directories so they are
	// "namespaced" per network.
	cfg.DataDir = filepath.Join(cfg.DataDir, cfg.NetParams().Name)
	cfg.LogDir = filepath.Join(cfg.LogDir, cfg.NetParams().Name)

	// Validate the number of candidates.
	if cfg.NumCandidates < minCandidates || cfg.NumCandidates > maxCandidates {
		str := "%s: The specified number of candidates is out of " +
			"range -- parsed [%d]"
		err = errors.Errorf(str, funcName, cfg.NumCandidates)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, err
	}

	// Ensure the specified block file exists.
	if cfg.AddBlocks != "" && !fileExists(cfg.AddBlocks) {
		str := "%s: The specified block file [%s] does not exist"
		err := errors.Errorf(str, funcName, cfg.AddBlocks)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, err
	}

	// Parse, validate, and set debug log level(s).
	if err := logger.ParseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		err = errors.Errorf("%s: %s", funcName, err.Error())
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, err
	}

	return cfg, nil
}
