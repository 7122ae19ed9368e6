// Package web embeds the single-page report entry form.
package web

import _ "embed"

//go:embed form.html
var FormPage []byte
