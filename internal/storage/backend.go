package storage

// Backend is the key-value persistence primitive the stores are built on.
// Each store owns one fixed key and serializes its own read-modify-write
// cycles; backends only need to make individual Get/Set/Remove calls safe.
//
// Values are always JSON documents in practice. Get reports ok=false when
// the key has never been written (or has been removed), which callers treat
// differently from an I/O error.
type Backend interface {
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
	Remove(key string) error
	Close() error
}
