// export_test.go exports private functions for white-box testing.
package logger

// Error formatting helpers exported for tests.
var (
	CollectErrorEntriesExported = collectErrorEntries
	FormatErrorEntriesExported  = formatErrorEntries
)

// NewForEnvironment exposes the graft node constructor.
var NewForEnvironment = newForEnvironment
