package cli

import "github.com/ooyeku/csvcore"

// buildOptions resolves csvcore.Options from the --config file (if any)
// layered under the command's own flag values: each non-empty flag value
// is applied after the config file's value and replaces it. hasHeader is
// applied unconditionally, so it always replaces the config file's
// has_header.
func buildOptions(delimiter, quote, escape string, hasHeader bool, trim string, culture string) csvcore.Options {
	opts := csvcore.DefaultOptions()

	if loadedConfig.Delimiter != "" {
		opts.Delimiter = []rune(loadedConfig.Delimiter)[0]
	}
	if loadedConfig.Quote != "" {
		opts.Quote = []rune(loadedConfig.Quote)[0]
		opts.Escape = opts.Quote
	}
	if loadedConfig.Escape != "" {
		opts.Escape = []rune(loadedConfig.Escape)[0]
	}
	if loadedConfig.HasHeader != nil {
		opts.HasHeader = *loadedConfig.HasHeader
	}
	if loadedConfig.Culture != "" {
		opts.Culture = loadedConfig.Culture
	}
	applyTrim(&opts, loadedConfig.TrimMode)

	if delimiter != "" {
		opts.Delimiter = []rune(delimiter)[0]
	}
	if quote != "" {
		opts.Quote = []rune(quote)[0]
		opts.Escape = opts.Quote
	}
	if escape != "" {
		opts.Escape = []rune(escape)[0]
	}
	opts.HasHeader = hasHeader
	if culture != "" {
		opts.Culture = culture
	}
	applyTrim(&opts, trim)

	return opts
}

func applyTrim(opts *csvcore.Options, mode string) {
	switch mode {
	case "start":
		opts.Trim = csvcore.TrimStart
	case "end":
		opts.Trim = csvcore.TrimEnd
	case "both":
		opts.Trim = csvcore.TrimBoth
	case "none", "":
	}
}
