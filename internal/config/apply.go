package config

import "attrgen/internal/analyze"

// ApplyOverrides rewrites the attribute names of matching schemas. An
// override matches on "pkgpath.TypeName", or on "pkgname.TypeName" as a
// shorthand. Overrides beat marker arguments.
func (f *File) ApplyOverrides(schemas []analyze.SchemaInfo) {
	for i := range schemas {
		s := &schemas[i]
		for _, ov := range f.Overrides {
			if ov.Type == s.PkgPath+"."+s.TypeName || ov.Type == s.PkgName+"."+s.TypeName {
				s.AttrName = ov.Name
			}
		}
	}
}
