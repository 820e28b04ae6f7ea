package table

import "fmt"

// UnsupportedFormatError reports a file whose extension has no reader.
type UnsupportedFormatError struct {
	Path string
	Ext  string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Ext == "" {
		return fmt.Sprintf("unsupported file format: %s has no extension", e.Path)
	}
	return fmt.Sprintf("unsupported file format %q: %s", e.Ext, e.Path)
}

// LoadError wraps any I/O or parse failure while reading a supported file.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
