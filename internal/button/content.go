package button

// ResolveLabel returns the label to display for status.
func ResolveLabel(p Props, status Status) string {
	return resolveOverride(p.Label, p.Labels, status)
}

// ResolveIcon returns the icon to display for status.
func ResolveIcon(p Props, status Status) string {
	return resolveOverride(p.Icon, p.Icons, status)
}

// Non-default statuses use their override when one is set.
func resolveOverride(base string, overrides map[Status]string, status Status) string {
	if status == StatusDefault || !status.Valid() {
		return base
	}
	if value, ok := overrides[status]; ok && value != "" {
		return value
	}
	return base
}

// HasOverrides reports whether any per-status label or icon is set.
func HasOverrides(p Props) bool {
	for _, status := range statuses {
		if status == StatusDefault {
			continue
		}
		if p.Labels[status] != "" || p.Icons[status] != "" {
			return true
		}
	}
	return false
}
