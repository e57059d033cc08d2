/*
Package otquery presents the values decoded by package ot in human readable
form: descriptions for platform, encoding, language and name IDs, lookups of
name strings, and tabular views of the decoded tables.

Package ot never imports otquery. Decoding does not depend on any of the
descriptions found here.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otquery

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'otfinfo.query'
func tracer() tracing.Trace {
	return tracing.Select("otfinfo.query")
}
