// Package session tracks per-client state between requests. Each browser
// session owns one in-progress run, keyed by a random ID carried in a cookie.
package session

import "context"

type Store[T any] interface {
	Get(ctx context.Context, id string) (T, bool, error)
	Put(ctx context.Context, id string, v T) error
	Delete(ctx context.Context, id string) error
	NewID() string
}
