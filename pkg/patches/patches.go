package patches

import (
	"bytes"
	_ "embed"

	"github.com/rycus86/textpatch/pkg/config"
	"github.com/rycus86/textpatch/pkg/parse"
)

//go:embed fix-revenue.yaml
var fixRevenue []byte

// Default returns the revenue display fix for the goals component.
func Default() (*config.Patch, error) {
	return parse.ParsePatch(bytes.NewReader(fixRevenue))
}
