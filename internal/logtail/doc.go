// Package logtail reads the tail of animeshelf's diagnostics log.
//
// Read extracts the last N lines of a file with a ring buffer, so memory
// stays O(maxLines) however large the log grows. ReadEntries goes one step
// further and decodes each zap JSON record into an Entry (time, level,
// logger name, message, extra fields) for the diagnostics view.
//
// Lines that are not JSON records, such as a panic dump appended by the
// runtime, are kept verbatim in Entry.Raw rather than dropped.
//
// A missing log file returns nil, nil. Other I/O errors are wrapped.
package logtail
