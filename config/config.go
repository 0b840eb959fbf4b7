package config

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Keys for the settings the engine and shell read. Command-line flags,
// COMALA_ environment variables (dashes become underscores) and an optional
// comala.yml config file all feed the same keys.
const (
	ConfigDebug                     = "debug"
	ConfigDataPath                  = "data-path"
	ConfigDefaultBoardLayout        = "board-layout"
	ConfigDefaultLetterDistribution = "letter-distribution"
	ConfigAutoplayTurnLog           = "autoplay-turn-log"
	ConfigAutoplayGameLog           = "autoplay-game-log"
	ConfigCPUProfile                = "cpu-profile"
	ConfigMemProfile                = "mem-profile"
)

const envPrefix = "comala"

type Config struct {
	v *viper.Viper
	// args holds whatever was left on the command line after flag
	// parsing, so the shell can run it as a one-shot command.
	args []string
}

// DefaultConfig returns a config with every key at its default. Tests use
// this instead of Load.
func DefaultConfig() *Config {
	c := &Config{v: viper.New()}
	setDefaults(c.v)
	return c
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(ConfigDebug, false)
	v.SetDefault(ConfigDataPath, "./data")
	v.SetDefault(ConfigDefaultBoardLayout, "CrosswordGame")
	v.SetDefault(ConfigDefaultLetterDistribution, "english")
	v.SetDefault(ConfigAutoplayTurnLog, "/tmp/autoplay-turns.csv")
	v.SetDefault(ConfigAutoplayGameLog, "")
	v.SetDefault(ConfigCPUProfile, "")
	v.SetDefault(ConfigMemProfile, "")
}

// Load reads configuration from defaults, an optional comala.yml config
// file, COMALA_ environment variables and command-line flags, in increasing
// order of precedence.
func (c *Config) Load(args []string) error {
	if c.v == nil {
		c.v = viper.New()
	}
	setDefaults(c.v)

	fs := pflag.NewFlagSet(envPrefix, pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.String(ConfigDataPath, "./data", "directory with letter distribution overrides")
	fs.String(ConfigDefaultBoardLayout, "CrosswordGame", "the default board layout")
	fs.String(ConfigDefaultLetterDistribution, "english", "the default letter distribution")
	fs.String(ConfigAutoplayTurnLog, "/tmp/autoplay-turns.csv", "turn-by-turn CSV log for autoplay games")
	fs.String(ConfigAutoplayGameLog, "", "per-game YAML log for autoplay games")
	fs.String(ConfigCPUProfile, "", "write cpu profile to file")
	fs.String(ConfigMemProfile, "", "write memory profile to file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.args = fs.Args()

	c.v.SetEnvPrefix(envPrefix)
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()

	c.v.SetConfigName(envPrefix)
	c.v.SetConfigType("yaml")
	c.v.AddConfigPath(".")
	if err := c.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}
	return c.v.BindPFlags(fs)
}

// Args returns the non-flag arguments left over from Load.
func (c *Config) Args() []string {
	return c.args
}

func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

// Set overrides a single setting. The shell's `set` command funnels here.
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

func (c *Config) AllSettings() map[string]interface{} {
	return c.v.AllSettings()
}

// AdjustRelativePaths makes the data path absolute, relative to the
// executable's directory, so the shell works from anywhere.
func (c *Config) AdjustRelativePaths(basepath string) {
	dp := c.v.GetString(ConfigDataPath)
	if !filepath.IsAbs(dp) {
		abs := filepath.Join(basepath, dp)
		log.Debug().Str("data-path", abs).Msg("adjusted relative path")
		c.v.Set(ConfigDataPath, abs)
	}
}
