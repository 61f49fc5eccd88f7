package dialog

import (
	"context"
	"sync"
	"testing"
)

func TestStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	// нет записи — отдаём idle, ошибки нет
	it, err := s.Get(ctx, 100)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if it.State != StateIdle || len(it.Payload) != 0 {
		t.Fatalf("пустой стор должен отдавать idle, получили %+v", it)
	}

	if err := s.Set(ctx, 100, StateAwaitSalary, Payload{fieldSalary: 70000}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	it, _ = s.Get(ctx, 100)
	if it.State != StateAwaitSalary {
		t.Errorf("State = %q, want %q", it.State, StateAwaitSalary)
	}
	if n, ok := GetInt(it.Payload, fieldSalary); !ok || n != 70000 {
		t.Errorf("salary = %v, want 70000", it.Payload[fieldSalary])
	}

	// повторный Set полностью перезаписывает сессию
	if err := s.Set(ctx, 100, StateAwaitRent, Payload{}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	it, _ = s.Get(ctx, 100)
	if it.State != StateAwaitRent || len(it.Payload) != 0 {
		t.Errorf("Set должен затирать старый payload, получили %+v", it)
	}

	if err := s.Reset(ctx, 100); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	it, _ = s.Get(ctx, 100)
	if it.State != StateIdle {
		t.Errorf("после Reset ожидается idle, получили %q", it.State)
	}
}

func TestStoreIsolatesChats(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	_ = s.Set(ctx, 1, StateAwaitSalary, Payload{fieldSalary: 100})
	_ = s.Set(ctx, 2, StateAwaitGoalName, Payload{fieldSalary: 200})

	it1, _ := s.Get(ctx, 1)
	it2, _ := s.Get(ctx, 2)
	if n, _ := GetInt(it1.Payload, fieldSalary); n != 100 {
		t.Errorf("чат 1: salary = %d, want 100", n)
	}
	if n, _ := GetInt(it2.Payload, fieldSalary); n != 200 {
		t.Errorf("чат 2: salary = %d, want 200", n)
	}

	_ = s.Reset(ctx, 1)
	if it2, _ = s.Get(ctx, 2); it2.State != StateAwaitGoalName {
		t.Errorf("Reset чужого чата не должен трогать запись: %+v", it2)
	}
}

// Get отдаёт копию: правка полученного payload не должна
// просачиваться в хранимую сессию.
func TestStoreGetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	_ = s.Set(ctx, 7, StateAwaitRent, Payload{fieldSalary: 1})
	it, _ := s.Get(ctx, 7)
	it.Payload[fieldSalary] = 999

	fresh, _ := s.Get(ctx, 7)
	if n, _ := GetInt(fresh.Payload, fieldSalary); n != 1 {
		t.Errorf("payload в сторе изменился через копию: %d", n)
	}
}

func TestStoreConcurrentChats(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		chatID := int64(i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Set(ctx, chatID, StateAwaitSalary, Payload{fieldSalary: int(chatID)})
			it, _ := s.Get(ctx, chatID)
			if n, _ := GetInt(it.Payload, fieldSalary); n != int(chatID) {
				t.Errorf("чат %d прочитал чужое значение %d", chatID, n)
			}
			_ = s.Reset(ctx, chatID)
		}()
	}
	wg.Wait()
}
