package state

import "testing"

func TestDefaultKeyBuilderFormat(t *testing.T) {
	kb := DefaultKeyBuilder{}
	got := kb.Build(StorageKey{ChatID: 42, UserID: 7})
	if got != "/42/7/" {
		t.Fatalf("Build = %q, want /42/7/", got)
	}
}

func TestDefaultKeyBuilderDeterministic(t *testing.T) {
	kb := DefaultKeyBuilder{}
	key := StorageKey{ChatID: -100123, UserID: 555}
	first := kb.Build(key)
	second := kb.Build(key)
	if first != second {
		t.Fatalf("Build is not deterministic: %q vs %q", first, second)
	}
}

func TestDefaultKeyBuilderDistinctKeys(t *testing.T) {
	kb := DefaultKeyBuilder{}
	keys := []StorageKey{
		{ChatID: 1, UserID: 2},
		{ChatID: 2, UserID: 1},
		{ChatID: 12, UserID: 3},
		{ChatID: 1, UserID: 23},
		{ChatID: -1, UserID: 2},
	}
	seen := make(map[string]StorageKey, len(keys))
	for _, key := range keys {
		built := kb.Build(key)
		if prev, ok := seen[built]; ok {
			t.Fatalf("collision: %+v and %+v both build %q", prev, key, built)
		}
		seen[built] = key
	}
}
