// Package templates holds the HTML bodies of every transactional email.
package templates

import "embed"

//go:embed *.html
var FS embed.FS
