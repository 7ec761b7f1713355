package seen

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStoreFirstSeenOnce(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	first, err := s.FirstSeen(ctx, "scope", "key", time.Minute)
	if err != nil || !first {
		t.Fatalf("first sighting: first=%v err=%v", first, err)
	}
	first, err = s.FirstSeen(ctx, "scope", "key", time.Minute)
	if err != nil || first {
		t.Fatalf("repeat sighting: first=%v err=%v", first, err)
	}
}

func TestMemoryStoreScopesAreIndependent(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	s.FirstSeen(ctx, "a", "key", time.Minute)
	first, _ := s.FirstSeen(ctx, "b", "key", time.Minute)
	if !first {
		t.Error("sighting leaked across scopes")
	}
}

func TestMemoryStoreTTLExpiry(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	s.FirstSeen(ctx, "scope", "key", time.Nanosecond)
	time.Sleep(5 * time.Millisecond)
	first, _ := s.FirstSeen(ctx, "scope", "key", time.Minute)
	if !first {
		t.Error("expired sighting still counted")
	}
}

func TestMemoryStoreZeroTTLNeverExpires(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	s.FirstSeen(ctx, "scope", "key", 0)
	first, _ := s.FirstSeen(ctx, "scope", "key", 0)
	if first {
		t.Error("zero-ttl sighting expired")
	}
}

func TestMemoryStoreReset(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	s.FirstSeen(ctx, "scope", "key", time.Minute)
	s.Reset()
	first, _ := s.FirstSeen(ctx, "scope", "key", time.Minute)
	if !first {
		t.Error("reset did not clear sightings")
	}
}
