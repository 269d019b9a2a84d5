/*
File    : rexxcore/interp/config.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

An optional rexxcore.yaml supplies two things a session can otherwise only
set by running REXX clauses: which ADDRESS target a session starts on, and
a table of host facts bound into the RUNTIME. compound symbol before any
user code runs, REXX's usual way of surfacing environment information to a
script. Nothing in the core requires this file; LoadConfig is only called
when one is found next to the program being run.
*/
package interp

import (
	"fmt"
	"os"
	"strings"

	"github.com/akashmaji946/rexxcore/value"
	"gopkg.in/yaml.v3"
)

// Config is the shape of a rexxcore.yaml file.
type Config struct {
	// Address names the ADDRESS target a session should start on, e.g.
	// "SYSTEM" to dispatch host commands through a shell from the first
	// clause instead of the silent DIAGNOSTIC default.
	Address string `yaml:"address"`

	// Runtime is bound into RUNTIME.<KEY> for every entry, upper-cased to
	// match REXX's case-insensitive symbol naming, before the program or
	// REPL session starts.
	Runtime map[string]string `yaml:"runtime"`
}

// LoadConfig reads and parses a rexxcore.yaml file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}

// ApplyConfig seeds its session state from cfg: the starting ADDRESS
// target and the RUNTIME.* fact table.
func (it *Interpreter) ApplyConfig(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.Address != "" {
		it.Address.SetCurrent(strings.ToUpper(cfg.Address))
	}
	for key, val := range cfg.Runtime {
		sym := value.ParseSymbol("RUNTIME." + key)
		it.Store.Set(sym, value.Str(val))
	}
}
