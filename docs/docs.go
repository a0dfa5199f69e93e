// Package docs embeds the OpenAPI document and the Scalar reference page.
package docs

import _ "embed"

//go:embed scalar.html
var ScalarHTML []byte

//go:embed openapi.json
var OpenAPI []byte
