package confform

import (
	"io/fs"

	"github.com/goliatone/go-confform/pkg/renderers/vanilla"
)

// EmbeddedTemplates exposes the built-in page templates so callers can reuse
// or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// AssetsFS exposes the stylesheet referenced by themed pages.
//
// Typical mount:
//
//	mux.Handle("/static/confform/",
//	  http.StripPrefix("/static/confform/",
//	    http.FileServerFS(confform.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	return vanilla.AssetsFS()
}
