// Copyright 2022 Intel Corporation. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"flag"
	"fmt"
	stdlog "log"
	"os"

	"github.com/hashicorp/go-multierror"

	"github.com/memtools/fincore/pkg/fincore"
	"github.com/memtools/fincore/pkg/output"
	"github.com/memtools/fincore/pkg/prefilter"
	_ "github.com/memtools/fincore/pkg/version"
)

func exit(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, fmt.Sprintf("fincore: "+format+"\n", a...))
	os.Exit(1)
}

// stringList collects the values of a repeatable flag.
type stringList []string

func (l *stringList) String() string {
	return fmt.Sprintf("%v", *l)
}

func (l *stringList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	optBytes := flag.Bool("bytes", false, "print sizes in bytes rather than in human readable format")
	optDrop := flag.Bool("drop", false, "try to drop file content from the page cache before counting")
	optNodes := flag.Bool("nodes", false, "count resident pages per NUMA node")
	optJSON := flag.Bool("json", false, "use JSON output format")
	optRaw := flag.Bool("raw", false, "use raw output format")
	optNoHeadings := flag.Bool("noheadings", false, "don't print headings")
	optOutput := flag.String("output", "", "-output=COL[,COL...] select output columns (PAGES,SIZE,FILE,RES,NODES)")
	optConfig := flag.String("config", "", "-config=FILE read option defaults from a YAML file")
	optDebug := flag.Bool("debug", false, "print debug messages")
	optPaths := stringList{}
	flag.Var(&optPaths, "path", "-path=PATH scan only listed files matching PATH, repeatable")

	flag.Parse()

	logger := stdlog.New(os.Stderr, "", 0)
	fincore.SetLogger(logger)
	fincore.SetLogDebug(*optDebug)

	cfg := &fileConfig{}
	if *optConfig != "" {
		var err error
		cfg, err = readConfigFile(*optConfig)
		if err != nil {
			exit("%v", err)
		}
	}

	// Explicitly given flags override the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "bytes":
			cfg.Bytes = *optBytes
		case "drop":
			cfg.Drop = *optDrop
		case "nodes":
			cfg.Nodes = *optNodes
		case "json":
			cfg.JSON = *optJSON
		case "raw":
			cfg.Raw = *optRaw
		case "noheadings":
			cfg.NoHeadings = *optNoHeadings
		case "output":
			cfg.Output = *optOutput
		}
	})

	files := flag.Args()
	if len(files) == 0 {
		exit("no file specified")
	}

	filters := prefilter.New()
	for _, path := range optPaths {
		filters.AddPath(path)
	}
	filters.Optimize()

	columns := output.DefaultColumns(cfg.Nodes)
	if cfg.Output != "" {
		var err error
		columns, err = output.ParseColumns(cfg.Output)
		if err != nil {
			exit("%v", err)
		}
	}

	if cfg.Nodes {
		nodes, err := fincore.PresentNodes()
		if err != nil {
			logger.Printf("WARN: fincore failed to enumerate NUMA nodes: %v", err)
		} else if len(nodes) < 2 {
			logger.Printf("WARN: fincore host has %d NUMA node(s), breakdown will be trivial", len(nodes))
		}
	}

	tb := output.New(output.Options{
		Columns:    columns,
		Bytes:      cfg.Bytes,
		NoHeadings: cfg.NoHeadings,
		JSON:       cfg.JSON,
		Raw:        cfg.Raw,
	})

	scanner := fincore.NewScanner(fincore.Config{
		Drop:        cfg.Drop,
		Nodes:       cfg.Nodes,
		WindowPages: cfg.WindowPages,
	})

	var scanErrors *multierror.Error
	for _, name := range files {
		if !filters.KeepPath(name) {
			continue
		}
		res, err := scanner.ScanFile(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "fincore: %v\n", err)
			scanErrors = multierror.Append(scanErrors, err)
			continue
		}
		if res == nil {
			// Directory, ignored.
			continue
		}
		row := output.Row{
			File:     res.Path,
			Size:     res.FileSize,
			Pages:    res.ResidentPages,
			Resident: res.ResidentBytes(),
		}
		if res.NodePages != nil {
			row.Nodes = make(map[int]int64, len(res.NodePages))
			for node, count := range res.NodePages {
				row.Nodes[int(node)] = count
			}
		}
		tb.Add(row)
	}

	if err := tb.Render(os.Stdout); err != nil {
		exit("%v", err)
	}
	if scanErrors.ErrorOrNil() != nil {
		os.Exit(1)
	}
}
