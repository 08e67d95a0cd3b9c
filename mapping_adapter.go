package csvcore

import "github.com/ooyeku/csvcore/mapping"

// MappingFromRegistry adapts a *mapping.Registry to satisfy
// MappingRegistry, translating mapping.Member into FieldMapping. The
// root package and mapping stay free of a direct import cycle: mapping
// never imports csvcore, and this adapter is the only place the two
// shapes meet.
func MappingFromRegistry(reg *mapping.Registry) MappingRegistry {
	return mappingAdapter{reg}
}

type mappingAdapter struct {
	reg *mapping.Registry
}

func (a mappingAdapter) Members(dest any) ([]FieldMapping, error) {
	members, err := a.reg.Members(dest)
	if err != nil {
		return nil, err
	}
	out := make([]FieldMapping, len(members))
	for i, m := range members {
		out[i] = FieldMapping{Name: m.Name, Index: m.Index, HasIndex: m.HasIndex, Set: m.Set}
	}
	return out, nil
}
