// Package templates holds the HTML bodies of outgoing emails.
package templates

import "embed"

//go:embed *.html
var FS embed.FS
