package commands

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/simonhull/firebird-suite/wren/prompt"
	"github.com/simonhull/firebird-suite/wren/style"
	"github.com/spf13/viper"
)

var textKeys = []struct {
	key string
	opt func(string) prompt.Option
}{
	{"prefix", prompt.WithPrefix},
	{"suffix", prompt.WithSuffix},
	{"default_prefix", prompt.WithDefaultPrefix},
	{"default_suffix", prompt.WithDefaultSuffix},
	{"input_error", prompt.WithInputError},
	{"required_error", prompt.WithRequiredError},
	{"invalid_error", prompt.WithInvalidError},
	{"attempts_error", prompt.WithAttemptsError},
}

var themeKeys = []struct {
	key string
	opt func(style.Func) prompt.Option
}{
	{"text_theme", prompt.WithTextTheme},
	{"prefix_theme", prompt.WithPrefixTheme},
	{"suffix_theme", prompt.WithSuffixTheme},
	{"default_theme", prompt.WithDefaultTheme},
}

// loadConfig reads wren.yaml and WREN_* environment variables into prompt
// options. A missing config file is fine unless file names it explicitly.
func loadConfig(v *viper.Viper, file string) ([]prompt.Option, error) {
	v.SetConfigType("yaml")
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("wren")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "wren"))
		}
	}

	// Enable environment variable overrides
	v.SetEnvPrefix("WREN")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "failed to read config")
		}
	}

	var opts []prompt.Option
	for _, k := range textKeys {
		if v.IsSet(k.key) {
			opts = append(opts, k.opt(v.GetString(k.key)))
		}
	}
	for _, k := range themeKeys {
		if !v.IsSet(k.key) {
			continue
		}
		fn, err := style.Named(v.GetString(k.key))
		if err != nil {
			return nil, errors.Wrapf(err, "config key %s", k.key)
		}
		opts = append(opts, k.opt(fn))
	}
	if v.IsSet("timeout") {
		d := v.GetDuration("timeout")
		if d < 0 {
			return nil, errors.Newf("config key timeout: negative duration %s", d)
		}
		opts = append(opts, prompt.WithTimeout(d))
	}

	return opts, nil
}
