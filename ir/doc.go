// Package ir provides the in-memory value model for UXF documents.
//
// # Overview
//
// Every UXF datum, whether produced by naturalizing a token, decoded from
// JSON or YAML, or built by application code, is an ir.Value. A Value is a
// closed tagged union: its Kind selects which payload is meaningful.
//
// # Kinds
//
// Scalars:
//
//   - NullKind: no payload
//   - BoolKind: true or false
//   - IntKind: 64-bit signed integer
//   - RealKind: 64-bit IEEE float
//   - StrKind: Unicode text
//   - BytesKind: an immutable byte sequence
//   - DateKind: a calendar date without time or zone
//   - DateTimeKind: a date and time with an optional zone offset
//
// Int, Str, Bytes, Date and DateTime are the key kinds: they may be used as
// map keys and are totally ordered by Compare.
//
// Collections:
//
//   - ListKind: an ordered sequence of values (*List)
//   - MapKind: insertion-ordered entries with unique key-kind keys (*Map)
//   - TableKind: a named schema of fields and a sequence of records (*Table)
//
// The stable type name of each kind (Kind.String) is one of null, bool,
// int, real, str, bytes, date, datetime, list, map or table.
//
// # Creating Values
//
//	s := ir.FromStr("hello")
//	n := ir.FromInt(42)
//	d, err := ir.NewDate(2024, time.February, 29)
//
//	l := ir.NewList(ir.FromInt(1), ir.FromInt(2))
//	list := ir.FromList(l)
//
//	m := ir.NewMap()
//	err = m.Insert(ir.FromStr("k"), ir.FromReal(1.5))
//
//	t := ir.NewTable()
//	err = t.SetSchema("point", "x", "y")
//	err = t.PushRecord(ir.FromInt(1), ir.FromInt(2))
//
// # Constraints
//
// The model rejects invalid states when they are created rather than when
// they are read:
//
//   - Map.Insert fails with ErrInvalidKeyKind for null, bool, real and
//     collection keys, and replaces the value of a key already present.
//   - Table.SetSchema fails with ErrEmptyFieldList, ErrDuplicateField,
//     ErrInvalidName, or ErrSchemaAlreadySet on a second call.
//   - Table.PushRecord fails with ErrRecordTooLong for records with more
//     values than fields. Shorter records are kept as given and read as if
//     padded with Null.
//
// Failed calls leave the collection unchanged.
//
// # Building From a Token Stream
//
// Builders that see one value at a time use Push, which alternates key and
// value for maps and fills the open record for tables. Table records are
// ended explicitly with Table.EndRecord.
//
// # Equality, Ordering and Hashing
//
// Equal compares kinds and payloads recursively; map equality ignores
// insertion order and table records compare through their padded view.
// Compare is a total order consistent with Equal, ranking kinds as
// Null < Bool < Int < Real < Str < Bytes < Date < DateTime < List < Map < Table.
// Identical additionally compares comments and type annotations.
// Value.Hash is consistent with Equal.
//
// # Traversal
//
// Value.Accept dispatches to a Visitor by capability (scalar, list, map,
// table). Value.Walk visits a whole tree depth first with the Path of each
// value, and Value.GetPath follows a Path back down.
//
// # Thread Safety
//
// Values are not synchronized. Concurrent readers are safe as long as no
// goroutine mutates the same collection; builders running in parallel
// should work on separate subtrees.
//
// # Related Packages
//
//   - github.com/uxf-format/go-uxf/token - classifies raw tokens into Values
//   - github.com/uxf-format/go-uxf/encode - renders scalars as tokens
//   - github.com/uxf-format/go-uxf/convert - JSON and YAML interop
//   - github.com/uxf-format/go-uxf/libdiff - structural differences
package ir
