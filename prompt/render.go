package prompt

import "github.com/simonhull/firebird-suite/wren/style"

// Render builds the literal prompt for text:
// prefix, question, default hint and suffix, each with its theme.
func Render(text string, cfg Config) string {
	var prefix, hint, suffix string

	if cfg.Prefix != "" {
		prefix = theme(cfg.PrefixTheme)(cfg.Prefix)
	}
	text = theme(cfg.TextTheme)(text)
	if cfg.Default != "" {
		hint = theme(cfg.DefaultTheme)(cfg.DefaultPrefix + cfg.Default + cfg.DefaultSuffix)
	}
	if cfg.Suffix != "" {
		suffix = theme(cfg.SuffixTheme)(cfg.Suffix)
	}

	return prefix + text + hint + suffix
}

func theme(fn style.Func) style.Func {
	if fn == nil {
		return style.None
	}
	return fn
}
