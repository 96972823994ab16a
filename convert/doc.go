// Package convert moves values to and from JSON and YAML.
//
// Plain JSON and YAML map directly: objects become maps with str keys in
// document order, arrays become lists, strings become strs, and numbers
// are naturalized so that 1 is an int and 1.0 a real.
//
// Values plain JSON cannot hold are written as single-key marker
// objects:
//
//	{"UXF^bytes": "4A6F"}
//	{"UXF^date": "2024-01-15"}
//	{"UXF^datetime": "2024-01-15T10:30:00Z"}
//	{"UXF^list": {"comment": "...", "vtype": "int", "list": [1, 2]}}
//	{"UXF^map": {"ktype": "int", "entries": [[1, "one"]]}}
//	{"UXF^table": {"name": "point", "fields": [{"name": "x"}], "records": [[1]]}}
//
// Lists and maps without annotations, and maps whose keys are all strs,
// use the plain forms. Decoding failures are reported as *DecodeError with
// the path of the offending value.
//
// # Usage
//
//	err := convert.ToJSON(v, os.Stdout)
//	v, err = convert.Decode(r, format.YAMLFormat)
//	d, err := convert.Digest(v)
//
// Set UXF_DEBUG_CONVERT=1 to dump the intermediate trees on stderr.
package convert
