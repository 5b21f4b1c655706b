package renderer

import "github.com/balintv/txt2ppt/layout"

// Renderer serializes a laid-out deck into its final file, e.g. a PPTX
// package. Render returns the encoded bytes.
type Renderer interface {
	Render(result *layout.Result) ([]byte, error)
}
