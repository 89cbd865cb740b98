package service

import "context"

// RawArchive keeps raw provider payloads for audit and reprocessing.
type RawArchive interface {
	Put(ctx context.Context, key string, data []byte) error
}
