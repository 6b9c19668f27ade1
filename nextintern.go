// Package nextintern holds assets shared by the binaries under cmd.
package nextintern

import "embed"

// EmailFS carries the notification templates, one directory per template
// with an html.tmpl and a plaintext.tmpl.
//
//go:embed templates/emails
var EmailFS embed.FS
