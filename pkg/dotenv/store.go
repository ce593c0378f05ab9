package dotenv

import "os"

// Store is the environment a Policy writes to.
type Store interface {
	Lookup(key string) (string, bool)
	Set(key, value string) error
	Unset(key string) error
}

// OSStore is the process environment.
type OSStore struct{}

func (OSStore) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (OSStore) Set(key, value string) error {
	return os.Setenv(key, value)
}

func (OSStore) Unset(key string) error {
	return os.Unsetenv(key)
}

// MapStore is an in-memory Store. It is not safe for concurrent use.
type MapStore map[string]string

func (m MapStore) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m MapStore) Set(key, value string) error {
	m[key] = value
	return nil
}

func (m MapStore) Unset(key string) error {
	delete(m, key)
	return nil
}
