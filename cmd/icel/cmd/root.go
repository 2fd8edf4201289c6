package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	icelconfig "github.com/coxioxi/icel/foundation/core/config"
	icellog "github.com/coxioxi/icel/foundation/core/log"
	"github.com/coxioxi/icel/foundation/icel"
)

const envPrefix = "ICEL"

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "icel",
	Short: "ICEL - Ganzzahl-Rechner für die Kommandozeile",
	Long: `ICEL wertet Ganzzahl-Ausdrücke mit Variablen aus.

Operatoren (schwächste zuerst):
  =                  Zuweisung (rechtsassoziativ)
  ?:                 Bedingungsoperator
  |  &               logisches Oder/Und (kurzschließend, 0 = falsch)
  !                  logisches Nicht (Ergebnis 0 oder 1)
  == != < <= > >=    Vergleiche (Ergebnis 0 oder 1)
  +  -               Addition, Subtraktion
  *  /  %            Multiplikation, Floor-Division, Floor-Modulo
  -  @               Vorzeichen, Absolutbetrag
  ^                  Potenz (rechtsassoziativ, bindet am stärksten)

Beispiele:
  icel eval "2 + 3 * 4"
  icel eval --ast "x = 2 ^ 10"
  icel run rechnung.icel
  icel repl`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: icel.toml im Suchpfad)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug-Ausgaben anzeigen")
}

// loadConfig loads the configuration named by --config, or discovers one
// in the standard locations. A missing file is only an error when
// --config names it explicitly.
func loadConfig() (*icelconfig.Config, error) {
	var cfg *icelconfig.Config
	var err error

	if cfgFile != "" {
		cfg, err = icelconfig.LoadWithOptions(cfgFile, icelconfig.LoadOptions{
			Format:    icelconfig.FormatAuto,
			EnvPrefix: envPrefix,
		})
	} else {
		cfg, err = icelconfig.Discover(icelconfig.DefaultDiscoveryOptions())
	}
	if err != nil {
		return nil, err
	}

	if result := cfg.Validate(configRules()); !result.Valid {
		return nil, fmt.Errorf("ungültige Konfiguration: %s", strings.Join(result.Errors, "; "))
	}

	return cfg, nil
}

// configRules describes the recognized configuration keys. Validation
// fills in the defaults, so the getters below always find a value.
func configRules() icelconfig.ValidationRules {
	return icelconfig.ValidationRules{
		"engine.max_expression_length": {Type: "int", Min: 1, Max: 1 << 20, Default: 4096},
		"engine.enable_cache":          {Type: "bool", Default: true},
		"engine.cache_size":            {Type: "int", Min: 1, Default: 1024},
		"engine.cache_ttl":             {Type: "duration", Default: "10m"},
		"logging.level":                {Type: "string"},
		"logging.format":               {Type: "string", Default: "text"},
		"repl.prompt":                  {Type: "string", Default: "calc> "},
		"repl.show_ast":                {Type: "bool", Default: true},
		"repl.history_size":            {Type: "int", Min: 1, Max: 10000, Default: 100},
	}
}

// newLogger builds the CLI logger. Without --verbose everything is
// discarded so command output stays clean; with --verbose structured
// logs go to out at debug level (or the configured logging.level).
func newLogger(cfg *icelconfig.Config, out io.Writer) (*icellog.Logger, icellog.Level) {
	if !verbose {
		return icellog.New().WithOutput(io.Discard), icellog.LevelFatal
	}

	level, err := icellog.ParseLevel(cfg.GetString("logging.level", "debug"))
	if err != nil {
		level = icellog.LevelDebug
	}

	format, err := icellog.ParseFormat(cfg.GetString("logging.format", "text"))
	if err != nil {
		format = icellog.FormatText
	}

	logger := icellog.New().
		WithLevel(level).
		WithFormat(format).
		WithOutput(out)

	return logger, level
}

// setupEngine loads the configuration and builds an Engine from it.
// Log output is directed to logOut when --verbose is set.
func setupEngine(logOut io.Writer) (*icel.Engine, *icelconfig.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	logger, level := newLogger(cfg, logOut)

	engine, err := icel.NewEngine(icel.Options{
		Logger:              logger,
		LogLevel:            level,
		MaxExpressionLength: cfg.GetInt("engine.max_expression_length", 4096),
		EnableCache:         cfg.GetBool("engine.enable_cache", true),
		CacheSize:           cfg.GetInt("engine.cache_size", 1024),
		CacheTTL:            cfg.GetDuration("engine.cache_ttl", 10*time.Minute),
	})
	if err != nil {
		return nil, nil, err
	}

	return engine, cfg, nil
}
