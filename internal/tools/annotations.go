package tools

// ReadOnlyUpstreamAnnotations fits every dashboard tool: no local mutation,
// repeat calls are safe, and the data source is an external API.
func ReadOnlyUpstreamAnnotations() map[string]bool {
	return map[string]bool{
		"readOnlyHint":    true,
		"destructiveHint": false,
		"idempotentHint":  true,
		"openWorldHint":   true,
	}
}

// LocalReadOnlyAnnotations is for tools answered entirely from in-process
// tables.
func LocalReadOnlyAnnotations() map[string]bool {
	return map[string]bool{
		"readOnlyHint":    true,
		"destructiveHint": false,
		"idempotentHint":  true,
		"openWorldHint":   false,
	}
}
