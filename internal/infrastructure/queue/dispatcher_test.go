package queue

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/inc-inventory/inventory-system/internal/core/domain"
)

type recordingRecorder struct {
	mu   sync.Mutex
	seen map[string][]int
}

func (r *recordingRecorder) Record(_ context.Context, m domain.StockMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen[m.ProductID] = append(r.seen[m.ProductID], m.Quantity)
	return nil
}

func TestDispatcher_PreservesPerProductOrder(t *testing.T) {
	rec := &recordingRecorder{seen: map[string][]int{}}
	d := NewDispatcher(4, rec, zerolog.Nop())
	d.Start(context.Background())

	products := []string{"p1", "p2", "p3", "p4", "p5"}
	for q := 1; q <= 50; q++ {
		for _, p := range products {
			d.Publish(domain.StockMovement{ProductID: p, Type: domain.MovementDecrease, Quantity: q})
		}
	}
	d.Close()

	for _, p := range products {
		got := rec.seen[p]
		if len(got) != 50 {
			t.Fatalf("product %s: expected 50 movements, got %d", p, len(got))
		}
		for i, q := range got {
			if q != i+1 {
				t.Fatalf("product %s: movement %d out of order (quantity %d)", p, i, q)
			}
		}
	}
}

func TestDispatcher_ShardIndexIsStable(t *testing.T) {
	d := NewDispatcher(0, &recordingRecorder{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
	first := d.shardIndex("product-42")
	for i := 0; i < 10; i++ {
		if d.shardIndex("product-42") != first {
			t.Fatalf("shard index changed between calls")
		}
	}
}

func TestDispatcher_PublishAfterCloseIsDropped(t *testing.T) {
	rec := &recordingRecorder{seen: map[string][]int{}}
	d := NewDispatcher(2, rec, zerolog.Nop())
	d.Start(context.Background())

	d.Publish(domain.StockMovement{ProductID: "p1", Quantity: 1})
	d.Close()
	d.Publish(domain.StockMovement{ProductID: "p1", Quantity: 2})
	d.Close()

	if got := rec.seen["p1"]; len(got) != 1 || got[0] != 1 {
		t.Fatalf("expected only the movement published before Close, got %v", got)
	}
}

func TestDispatcher_CloseWhilePublishing(t *testing.T) {
	rec := &recordingRecorder{seen: map[string][]int{}}
	d := NewDispatcher(2, rec, zerolog.Nop())
	d.Start(context.Background())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for q := 1; q <= 100; q++ {
				d.Publish(domain.StockMovement{ProductID: "p1", Quantity: q})
			}
		}()
	}
	d.Close()
	wg.Wait()
}
