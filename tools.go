//go:build tools

package datatypes

import (
	_ "golang.org/x/tools/cmd/stringer"
)
