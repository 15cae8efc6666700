// ABOUTME: Key-value persistence medium interface and common errors
// ABOUTME: The workout log treats storage as an opaque string-keyed channel

package kv

import "errors"

// ErrNoValue is returned when a key has no stored value.
var ErrNoValue = errors.New("no value stored")

// Medium is a single string-keyed store. The workout log writes its whole
// serialized collection under one key and never inspects the bytes here.
type Medium interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}
