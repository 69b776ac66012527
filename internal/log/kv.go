package log

import "sort"

// KV is a map of key-value pairs to be logged alongside a message.
type KV map[string]any

// kvToArgs flattens the first KV into the alternating key/value slice
// slog expects. Keys are sorted so log output is deterministic. Extra
// KVs are ignored; the variadic parameter only exists so callers can
// omit the map entirely.
func kvToArgs(keyVals ...KV) []any {
	args := []any{}
	if len(keyVals) == 0 {
		return args
	}

	kv := keyVals[0]
	keys := make([]string, 0, len(kv))
	for key := range kv {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		args = append(args, key, kv[key])
	}
	return args
}

// kvToArgsNs is kvToArgs with the namespace prepended as the "ns" pair.
func kvToArgsNs(namespace string, keyVals ...KV) []any {
	return append([]any{"ns", namespace}, kvToArgs(keyVals...)...)
}
