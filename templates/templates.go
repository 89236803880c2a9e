package templates

import "embed"

// FS holds layouts, partials and views rendered by the web UI.
//
//go:embed layouts partials views
var FS embed.FS
