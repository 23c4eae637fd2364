package main

import (
	"strconv"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// tracerKeys lists the tracers of the unidecode packages.
var tracerKeys = []string{
	"unidecode",
	"unidecode.codepoint",
	"unidecode.blocks",
	"unidecode.tablefile",
	"unidecode.tables",
	"unidecode.slug",
}

// config is a flat schuko.Configuration, populated from command line flags.
type config map[string]string

var _ schuko.Configuration = config(nil)

func (c config) InitDefaults() {}

func (c config) IsSet(key string) bool {
	_, ok := c[key]
	return ok
}

func (c config) GetString(key string) string {
	return c[key]
}

func (c config) GetInt(key string) int {
	n, _ := strconv.Atoi(c[key])
	return n
}

func (c config) GetBool(key string) bool {
	b, _ := strconv.ParseBool(c[key])
	return b
}

func (c config) IsInteractive() bool { return false }

// setupTracing routes all tracers to the Go standard logger (on stderr) at the
// given level.
func setupTracing(level string) {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := config{
		"tracing.adapter": "go",
		"tracelevel.root": level,
	}
	for _, key := range tracerKeys {
		conf["tracelevel."+key] = level
	}
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		tracing.Errorf("cannot configure tracing: %v", err)
		return
	}
	tracing.SetTraceSelector(trace2go.Selector())
}
