package csvcore

import "github.com/ooyeku/csvcore/convert"

// ConversionFromRegistry adapts a *convert.Registry to satisfy
// ConversionRegistry. Both Convert signatures already agree, so this is
// a direct pass-through kept only so callers don't need to import
// convert's package path to wire SetConversion.
func ConversionFromRegistry(reg *convert.Registry) ConversionRegistry {
	return reg
}
