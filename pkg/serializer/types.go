// Package serializer provides output formatting for relkit results.
//
// The package supports three output formats:
//   - JSON: machine-readable structured data with indentation
//   - YAML: human-readable structured data
//   - Text: the plain canonical form (a bare version string)
//
// Usage:
//
//	writer := serializer.NewWriter(serializer.FormatJSON, os.Stdout)
//	defer writer.Close()
//	if err := writer.Serialize(ctx, result); err != nil {
//		return err
//	}
//
// The package automatically handles buffered destinations, fallback to
// stdout when a file cannot be created, and resource cleanup via Close.
package serializer

import "context"

// Serializer is an interface for writing a result in some format.
// The context parameter is kept for implementations that perform I/O.
type Serializer interface {
	Serialize(ctx context.Context, v any) error
}

// Closer is an optional interface that Serializers can implement if they
// need to release resources (e.g., close file handles).
type Closer interface {
	Close() error
}
