package fontrepo

import (
	_ "embed"
	"path"
	"sort"
	"strings"

	"github.com/common-nighthawk/go-figure"

	"github.com/aalvaropc/figgy/internal/domain"
)

const bundledSource = "embedded:fonts/ansi_shadow.flf"

//go:embed fonts/ansi_shadow.flf
var ansiShadowFLF []byte

// engineFonts lists the fonts compiled into go-figure, read from its asset table.
func engineFonts() []domain.FontName {
	assets := figure.AssetNames()
	out := make([]domain.FontName, 0, len(assets))
	for _, a := range assets {
		if !strings.EqualFold(path.Ext(a), flfExt) {
			continue
		}
		out = append(out, domain.FontName(strings.TrimSuffix(path.Base(a), path.Ext(a))))
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// bundledFonts ship with figgy itself. They render through the custom-font path.
func bundledFonts() []domain.FontDefinition {
	return []domain.FontDefinition{
		{Name: "ansi_shadow", SourcePath: bundledSource, Data: normalizeNewlines(ansiShadowFLF)},
	}
}
