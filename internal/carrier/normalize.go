package carrier

import (
	"strings"

	"carriertext/internal/carrier/models"
)

// Normalizer rewrites composite carrier names such as "Acme|Acme-Local".
// Split and rejoin always use the default separator, never the carrier override.
type Normalizer struct {
	separator  string
	resources  models.Resources
	showLocale bool
}

// NewNormalizer builds a normalizer for one pass.
func NewNormalizer(separator string, resources models.Resources, showLocale bool) Normalizer {
	return Normalizer{
		separator:  separator,
		resources:  resources,
		showLocale: showLocale,
	}
}

// Normalize splits name into at most two parts, localizes each part, appends the
// network class label, drops a part equal to the one right before it and rejoins
// the non-empty survivors.
func (n Normalizer) Normalize(name, ratLabel string) string {
	parts := []string{name}
	if n.separator != "" {
		parts = strings.SplitN(name, n.separator, 2)
	}

	kept := make([]string, 0, len(parts))
	for j := range parts {
		if n.showLocale {
			parts[j] = n.resources.LocalizeCarrierName(parts[j])
		}
		if parts[j] == "" {
			continue
		}
		if ratLabel != "" {
			parts[j] = parts[j] + " " + ratLabel
		}
		// Only the adjacent part is compared; multi-language names repeat in pairs.
		if j > 0 && parts[j] == parts[j-1] {
			continue
		}
		kept = append(kept, parts[j])
	}
	return strings.Join(kept, n.separator)
}
