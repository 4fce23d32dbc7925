package repository

// Option applies a configuration option to the FileStore.
type Option func(*FileStore)

// WithFormat forces the decoding format instead of deriving it from the
// file extension.
func WithFormat(format Format) Option {
	return func(s *FileStore) {
		if format != "" {
			s.format = format
		}
	}
}
