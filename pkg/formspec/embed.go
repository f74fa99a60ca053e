package formspec

import "embed"

//go:embed defaults/*.yaml
var defaultsFS embed.FS

// DefaultOrderForm returns the embedded intake order definition: required
// name and phone fields plus the box-type selection group.
func DefaultOrderForm() (Definition, error) {
	return LoadFile(defaultsFS, "defaults/order.yaml")
}
