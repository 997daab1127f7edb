package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/atomicstack/popup-pick/internal/app"
	"github.com/atomicstack/popup-pick/internal/keys"
	"github.com/atomicstack/popup-pick/internal/version"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	// KeyOverrides are the rebinds applied to App.Keys, by binding name.
	KeyOverrides map[string][]string
	ConfigPath   string
	Flags        map[string]string
	Args         []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	DumpCommands bool
	ShowVersion  bool
}

const (
	envConfig    = "POPUP_PICK_CONFIG"
	envItemsFile = "POPUP_PICK_ITEMS_FILE"
	envWatch     = "POPUP_PICK_WATCH"
	envDelimiter = "POPUP_PICK_DELIMITER"
	envWidth     = "POPUP_PICK_WIDTH"
	envHeight    = "POPUP_PICK_HEIGHT"
	envTrace     = "POPUP_PICK_TRACE"
	envLogFile   = "POPUP_PICK_LOG_FILE"
)

// ErrHelp is returned when usage was requested.
var ErrHelp = pflag.ErrHelp

type flagValues struct {
	config       *string
	itemsFile    *string
	watch        *time.Duration
	delimiter    *string
	width        *int
	height       *int
	trace        *bool
	logFile      *string
	dumpCommands *bool
	version      *bool
	keys         *[]string
}

func newFlagSet(env map[string]string) (*pflag.FlagSet, flagValues) {
	fs := pflag.NewFlagSet(version.Name, pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	fs.SortFlags = false
	v := flagValues{
		config:       fs.StringP("config", "c", envOrDefault(env, envConfig, ""), "path to a TOML config file"),
		itemsFile:    fs.StringP("items-file", "f", envOrDefault(env, envItemsFile, ""), "read items from this file, one per line (- for stdin)"),
		watch:        fs.Duration("watch", envOrDuration(env, envWatch, 0), "re-read the items file at this interval (0 reads once)"),
		delimiter:    fs.StringP("delimiter", "d", envOrDefault(env, envDelimiter, ""), "split each line into value and label at the first delimiter"),
		width:        fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)"),
		height:       fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)"),
		trace:        fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging"),
		logFile:      fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file"),
		dumpCommands: fs.Bool("dump-commands", false, "print every command shown in help and exit"),
		version:      fs.BoolP("version", "V", false, "print the version and exit"),
		keys:         fs.StringArray("key", nil, "rebind a key as name=key[,key...] (repeatable)"),
	}
	return fs, v
}

// Usage returns the flag help text.
func Usage() string {
	fs, _ := newFlagSet(nil)
	return fmt.Sprintf("Usage: %s [flags] [item...]\n\nFlags:\n%s\nKey names: %s\n",
		version.Name, fs.FlagUsages(), strings.Join(keys.Names(), ", "))
}

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Flags win over
// environment variables, which win over the config file.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)
	fs, v := newFlagSet(env)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	file := fileConfig{}
	if *v.config != "" {
		loaded, err := loadFile(*v.config)
		if err != nil {
			return Config{}, err
		}
		file = loaded
	}
	set := func(name, envKey string) bool {
		if fs.Changed(name) {
			return true
		}
		_, ok := env[envKey]
		return ok
	}
	if !set("items-file", envItemsFile) && file.ItemsFile != "" {
		*v.itemsFile = file.ItemsFile
	}
	if !set("watch", envWatch) && file.Watch.Duration > 0 {
		*v.watch = file.Watch.Duration
	}
	if !set("delimiter", envDelimiter) && file.Delimiter != "" {
		*v.delimiter = file.Delimiter
	}
	if !set("width", envWidth) && file.Width != 0 {
		*v.width = file.Width
	}
	if !set("height", envHeight) && file.Height != 0 {
		*v.height = file.Height
	}
	if !set("trace", envTrace) && file.Logging.Trace {
		*v.trace = true
	}
	if !set("log-file", envLogFile) && file.Logging.File != "" {
		*v.logFile = file.Logging.File
	}

	if *v.width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *v.width)
	}
	if *v.height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *v.height)
	}
	if *v.watch < 0 {
		return Config{}, fmt.Errorf("watch must be >= 0 (got %s)", *v.watch)
	}

	overrides := make(map[string][]string, len(file.Keys)+len(*v.keys))
	for name, list := range file.Keys {
		overrides[name] = list
	}
	for _, raw := range *v.keys {
		name, list, err := parseKeyFlag(raw)
		if err != nil {
			return Config{}, err
		}
		overrides[name] = list
	}
	km := keys.Default()
	if err := km.Apply(overrides); err != nil {
		return Config{}, err
	}

	items := fs.Args()
	if len(items) == 0 {
		items = file.Items
	}

	cfg := Config{
		App: app.Config{
			Items:     append([]string(nil), items...),
			ItemsFile: *v.itemsFile,
			Watch:     *v.watch,
			Delimiter: *v.delimiter,
			Width:     *v.width,
			Height:    *v.height,
			Keys:      km,
		},
		Logging: Logging{
			FilePath: *v.logFile,
			Trace:    *v.trace,
		},
		Features: Features{
			DumpCommands: *v.dumpCommands,
			ShowVersion:  *v.version,
		},
		KeyOverrides: overrides,
		ConfigPath:   *v.config,
		Flags: map[string]string{
			"config":       *v.config,
			"itemsFile":    *v.itemsFile,
			"watch":        v.watch.String(),
			"delimiter":    *v.delimiter,
			"width":        strconv.Itoa(*v.width),
			"height":       strconv.Itoa(*v.height),
			"trace":        strconv.FormatBool(*v.trace),
			"logFile":      *v.logFile,
			"dumpCommands": strconv.FormatBool(*v.dumpCommands),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseKeyFlag(raw string) (string, []string, error) {
	name, list, ok := strings.Cut(raw, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", nil, fmt.Errorf("invalid --key %q (want name=key[,key...])", raw)
	}
	var out []string
	for _, k := range strings.Split(list, ",") {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return name, out, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if errors.Is(err, ErrHelp) {
		fmt.Fprint(os.Stdout, Usage())
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures there is something to pick from.
func Validate(cfg Config) error {
	if cfg.Features.DumpCommands || cfg.Features.ShowVersion {
		return nil
	}
	if cfg.App.Watch > 0 && (cfg.App.ItemsFile == "" || cfg.App.ItemsFile == "-") {
		return errors.New("--watch needs an items file")
	}
	return nil
}
