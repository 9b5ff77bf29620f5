package listmap

import "errors"

var (
	// ErrEmpty is returned by DeleteMin and DeleteMax on an empty map.
	ErrEmpty = errors.New("listmap: empty map")

	// ErrIteratorInvalid is reported by Iterator.Err after the map was
	// structurally mutated between iterator steps.
	ErrIteratorInvalid = errors.New("listmap: iterator invalidated by mutation")
)
