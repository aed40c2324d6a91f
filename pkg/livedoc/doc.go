// Package livedoc turns YAML and JSON documents into node streams.
//
// The root of a document is a mapping. It becomes an object with the empty
// identifier, so the top-level entries of a registered document can be
// looked up by name. Mappings become objects, sequences become arrays and
// scalars keep their type.
//
// Strings of the form "#rgb", "#rgba", "#rrggbb" or "#rrggbbaa" become color
// values. YAML documents can also write colors by name with the !color tag
// and identifier references with the !id tag:
//
//	button:
//	  text: OK
//	  color: !color steelblue
//	  hover: "#ff000080"
//	  animator: !id hover
package livedoc
