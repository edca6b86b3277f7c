package secret

import "sort"

// Var is one key/value pair of an environment.
type Var struct {
	Key   string
	Value string
}

// Environment is an ordered collection of environment variables. Order is
// preserved through resolution and determines the order verification
// reports missing secrets in.
type Environment []Var

// EnvironmentFromMap builds an Environment from a map, ordering keys
// lexically so the result is deterministic.
func EnvironmentFromMap(m map[string]string) Environment {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	env := make(Environment, 0, len(m))
	for _, k := range keys {
		env = append(env, Var{Key: k, Value: m[k]})
	}
	return env
}

// Map returns the environment as a map. Later duplicates win, matching how
// process environments treat repeated keys.
func (e Environment) Map() map[string]string {
	m := make(map[string]string, len(e))
	for _, v := range e {
		m[v.Key] = v.Value
	}
	return m
}

// Lookup returns the value of the first variable named key.
func (e Environment) Lookup(key string) (string, bool) {
	for _, v := range e {
		if v.Key == key {
			return v.Value, true
		}
	}
	return "", false
}
