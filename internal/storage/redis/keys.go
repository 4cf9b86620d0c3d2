package redis

import "fmt"

// Key prefix for all companion data
const keyPrefix = "dxcore"

// sessionKey returns the Redis key for the namespace's session
func sessionKey(namespace string) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, namespace)
}

// wordListKey returns the Redis key for a cached word list
func wordListKey(namespace, name string) string {
	return fmt.Sprintf("%s:wordlist:%s:%s", keyPrefix, namespace, name)
}
