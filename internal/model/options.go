package model

// DefaultKeyPrefix is prepended to a field id to derive its question key.
const DefaultKeyPrefix = "field_"

// Options configures the behaviour of the Builder. Options are constructed by
// the public adapter in pkg/model and passed into New.
type Options struct {
	Labeler   func(string) string
	KeyPrefix string
}

func defaultOptions() Options {
	return Options{
		Labeler:   DefaultLabeler,
		KeyPrefix: DefaultKeyPrefix,
	}
}
