package secret

import (
	"reflect"
	"testing"
)

func TestEnvironmentFromMap_SortedKeys(t *testing.T) {
	env := EnvironmentFromMap(map[string]string{
		"ZED":   "3",
		"ALPHA": "1",
		"MID":   "2",
	})
	want := Environment{
		{Key: "ALPHA", Value: "1"},
		{Key: "MID", Value: "2"},
		{Key: "ZED", Value: "3"},
	}
	if !reflect.DeepEqual(env, want) {
		t.Fatalf("EnvironmentFromMap() = %#v, want %#v", env, want)
	}
}

func TestEnvironment_MapRoundTrip(t *testing.T) {
	m := map[string]string{"A": "1", "B": "2"}
	if got := EnvironmentFromMap(m).Map(); !reflect.DeepEqual(got, m) {
		t.Fatalf("Map() = %#v, want %#v", got, m)
	}
}

func TestEnvironment_Lookup(t *testing.T) {
	env := Environment{{Key: "A", Value: "1"}}

	if v, ok := env.Lookup("A"); !ok || v != "1" {
		t.Fatalf("Lookup(A) = %q, %v", v, ok)
	}
	if _, ok := env.Lookup("B"); ok {
		t.Fatalf("Lookup(B) found a value")
	}
}
