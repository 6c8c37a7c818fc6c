package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/juju/gnuflag"
	"github.com/juju/loggo/v2"

	"linked_lists/src/lists_run/scalars"
)

var logger = loggo.GetLogger("lists.run")

type pathsValue []string

func (p *pathsValue) String() string {
	return strings.Join(*p, " ")
}

func (p *pathsValue) Set(s string) error {
	*p = strings.Fields(s)
	return nil
}

func main() {
	var kind, at, searchTarget, logConfig string
	var dedupe bool
	var paths pathsValue

	gnuflag.Var(&paths, "inst", "a list of scalar file paths, separated by a whitespace")
	gnuflag.StringVar(&kind, "kind", "list", "The container to build: "+strings.Join(kinds, ", "))
	gnuflag.BoolVar(&dedupe, "distinct", false, "Drop repeated scalars before building the container")
	gnuflag.StringVar(&at, "at", "", "Print the list element at this index")
	gnuflag.StringVar(&searchTarget, "search", "", "Binary search this number among the numeric scalars")
	gnuflag.StringVar(&logConfig, "log", "<root>=WARNING", "Logging configuration")

	gnuflag.Parse(true)

	if err := loggo.ConfigureLoggers(logConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid logging configuration %q: %v\n", logConfig, err)
		os.Exit(1)
	}
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "Must specify at least a path")
		os.Exit(1)
	}
	var target float64
	if searchTarget != "" {
		var err error
		if target, err = strconv.ParseFloat(searchTarget, 64); err != nil {
			fmt.Fprintf(os.Stderr, "Search target must be a number: %v\n", err)
			os.Exit(1)
		}
	}

	failed := false
	for _, p := range paths {
		values, err := scalars.LoadFile(p)
		if err != nil {
			logger.Warningf("skipping instance %q: %v", p, err)
			failed = true
			continue
		}
		if dedupe {
			values = distinct(values)
		}

		logger.Infof("building %s from %d scalars of %q", kind, len(values), p)
		fmt.Printf("Instance %v:\n", p)
		if err := run(os.Stdout, kind, values, at); err != nil {
			logger.Errorf("instance %q: %v", p, err)
			failed = true
		}
		if searchTarget != "" {
			search(os.Stdout, values, target)
		}
		fmt.Println()
	}
	if failed {
		os.Exit(1)
	}
}
