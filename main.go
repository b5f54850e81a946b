package main

import (
	"fmt"
	"os"

	"github.com/pborman/getopt/v2"

	"github.com/mordilloSan/go-kazlog/kazlog"
)

// Example demonstrating go-kazlog usage.
func main() {
	optFile := getopt.StringLong("logfile", 'f', "", "Also write records to this file (created/truncated)")
	optLevel := getopt.StringLong("level", 'l', "DEBUG", "Root threshold: NONE, ERROR, WARN, INFO or DEBUG")
	helpFlag := getopt.BoolLong("help", 'h', "Display help")
	getopt.Parse()

	if *helpFlag {
		getopt.Usage()
		os.Exit(0)
	}

	level, err := kazlog.ParseLevel(*optLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "go-kazlog: %v\n", err)
		getopt.Usage()
		os.Exit(1)
	}

	root := kazlog.Root()
	root.SetThreshold(level)
	root.AddHandler(kazlog.NewConsoleHandler())

	if *optFile != "" {
		fh, err := kazlog.NewFileHandler(*optFile)
		if err != nil {
			// A handler that cannot open its file is a fatal
			// configuration error.
			fmt.Fprintf(os.Stderr, "go-kazlog: %v\n", err)
			os.Exit(1)
		}
		defer fh.Close()
		root.AddHandler(fh)
		root.Info("logging to file: " + *optFile)
	}

	// Package-level logging on the root logger, call site captured
	// automatically.
	kazlog.Debug("debug is on")
	kazlog.Info("hello world")
	kazlog.Warn("be careful")
	kazlog.Error("oops: something happened")

	// WarnOnce fires a single time per call site.
	for i := 0; i < 5; i++ {
		kazlog.WarnOnce("this warning appears once, not five times")
	}

	// Positional template formatting.
	msg, err := kazlog.Format("{0} of {1} workers ready", 3, 4)
	if err != nil {
		fmt.Fprintf(os.Stderr, "go-kazlog: %v\n", err)
	} else {
		kazlog.Info(msg)
	}

	// Named loggers are created lazily and keep their own handler list.
	db := kazlog.GetLogger("db")
	db.AddHandler(kazlog.NewConsoleHandler())
	db.SetThreshold(kazlog.LevelWarn)
	db.Info("this is filtered out")
	db.Warn("connection pool exhausted")
}
