package gen

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"

	"easyinit/internal/extract"
	"easyinit/internal/plugin"
	"easyinit/internal/syntax"
)

// Marker is the directive activating the initializer transformation.
const Marker = "easyinit:generate"

// DescriptorConfig configures the initializer transformation.
type DescriptorConfig struct {
	// Style selects which initializers are emitted.
	Style Style
	// Dump, when set, receives a dump of every extracted field sequence.
	Dump io.Writer
}

// Descriptor returns the plugin descriptor of the initializer transformation.
func Descriptor(cfg DescriptorConfig) plugin.Descriptor {
	return plugin.Descriptor{
		Name:   "EasyInit",
		Marker: Marker,
		Expand: func(decl *syntax.Decl, ctx plugin.Context) ([]string, error) {
			return expandInitializers(cfg, decl, ctx)
		},
	}
}

func expandInitializers(cfg DescriptorConfig, decl *syntax.Decl, ctx plugin.Context) ([]string, error) {
	fields, err := extract.Extract(decl)
	if err != nil {
		return nil, err
	}

	if cfg.Dump != nil {
		fmt.Fprintf(cfg.Dump, "%s (%s):\n", decl.Name, decl.Pos)
		spew.Fdump(cfg.Dump, fields)
	}

	return Synthesize(cfg.Style, SubjectOf(decl, ctx.Reserved...), fields)
}
