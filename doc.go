// Package plist builds Apple property list documents and renders them as
// XML.
//
// A Document owns a root Dict. Dicts and Arrays are populated with builder
// methods: Dict and Arr create nested containers and return them, Val adds a
// string, integer, real or boolean, Date adds a date and Data adds base64
// encoded bytes. Builders that can reject their input return an error along
// with the receiver, so a failed call never modifies the tree.
//
//	doc := plist.New()
//	doc.Str("Name", "Demo")
//	doc.Int("Count", 3)
//	doc.Arr("Tags").Str("a").Str("b")
//
//	out, err := doc.Serialize()
//
// Dict keys keep the order they were first added in. Adding a key again
// replaces its value in place.
//
// A Document is not safe for concurrent use; callers sharing one across
// goroutines must serialize access to the whole tree.
package plist
