package button

import "strings"

// Base classes carried by every button.
const (
	ClassRoot = "zz-button"
	ClassBtn  = "btn"
)

// Size names accepted by SizeClass.
const (
	SizeTiny   = "tiny"
	SizeSmall  = "small"
	SizeMedium = "medium"
	SizeLarge  = "large"
)

// KindDefault is the kind a button gets when none is configured.
const KindDefault = "default"

var sizeClasses = map[string]string{
	SizeTiny:   "btn-xs",
	SizeSmall:  "btn-sm",
	SizeMedium: "",
	SizeLarge:  "btn-lg",
}

// KindClass converts a kind name to its class. Empty kinds have no class.
func KindClass(kind string) string {
	kind = strings.TrimSpace(kind)
	if kind == "" {
		return ""
	}
	return "btn-" + kind
}

// SizeClass converts a size name to its class. Medium and unknown sizes have
// no class.
func SizeClass(size string) string {
	return sizeClasses[size]
}

// ClassList returns the full class list for the given props, dropping empty
// entries.
func ClassList(p Props) []string {
	classes := []string{ClassRoot, ClassBtn}
	if c := KindClass(p.Kind); c != "" {
		classes = append(classes, c)
	}
	if c := SizeClass(p.Size); c != "" {
		classes = append(classes, c)
	}
	for _, extra := range p.Classes {
		for _, field := range strings.Fields(extra) {
			classes = append(classes, field)
		}
	}
	return classes
}
