package templates

import "embed"

//go:embed builtin
var builtinFS embed.FS

const builtinRoot = "builtin"
