package models

// Report layout
const (
	// Delimiter separates fields in both the input log and the report.
	Delimiter = ","
	// LabelResult prefixes the balance line of the report.
	LabelResult = "result"
)

// File permissions
const (
	PermissionDirectory  = 0750
	PermissionReportFile = 0644
)
