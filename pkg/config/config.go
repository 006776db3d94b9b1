package config

import (
	"errors"
	"flag"
	"os"

	"github.com/kkyr/fig"
	"github.com/spf13/pflag"
)

const EnvPrefix = "RGB565"

// Lutgen holds the table generator settings.
type Lutgen struct {
	// Out is the directory the .bin blobs are written to.
	Out string `fig:"out" default:"tables"`
	// Tables narrows generation to the named tables. Empty means the default
	// set: every table except the two 32 MiB 888→565 ones.
	Tables []string `fig:"tables"`
	// Huge includes the two 32 MiB tables in the default set.
	Huge bool `fig:"huge"`
	// Debug enables debug logging.
	Debug bool `fig:"debug"`
}

// NewLutgenConfig reads lutgen.yaml when one is present, then environment
// variables with the RGB565_ prefix. A missing config file is not an error;
// the struct defaults apply.
func NewLutgenConfig(path string) (Lutgen, error) {
	var conf Lutgen
	dirs := []string{path}
	if path == "" {
		dirs = []string{".", "configs"}
		if home, err := os.UserHomeDir(); err == nil {
			dirs = append(dirs, home+"/.rgb565")
		}
	}
	err := fig.Load(&conf, fig.File("lutgen.yaml"), fig.Dirs(dirs...), fig.UseEnv(EnvPrefix))
	if errors.Is(err, fig.ErrFileNotFound) {
		err = fig.Load(&conf, fig.IgnoreFile(), fig.UseEnv(EnvPrefix))
	}
	return conf, err
}

// WithFlags registers command line overrides.
func (l *Lutgen) WithFlags(fs *pflag.FlagSet) *Lutgen {
	fs.StringVarP(&l.Out, "out", "o", l.Out, "Output directory for the generated tables")
	fs.StringSliceVarP(&l.Tables, "tables", "t", l.Tables, "Generate only the named tables")
	fs.BoolVar(&l.Huge, "huge", l.Huge, "Include the two 32 MiB 888→565 tables")
	fs.BoolVar(&l.Debug, "debug", l.Debug, "Enable debug logging")
	return l
}

// ParseFlags merges the stdlib flag set and parses the command line.
func (l *Lutgen) ParseFlags() {
	l.WithFlags(pflag.CommandLine)
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	pflag.Parse()
}
