package accessibility

import "testing"

func TestStoreNormalizesInitial(t *testing.T) {
	store := NewStore(Settings{MaxLives: 0, TipAllowance: 3, CountdownSteps: 3})
	if got := store.Settings().MaxLives; got != MinLives {
		t.Errorf("Expected MaxLives clamped to %d, got %d", MinLives, got)
	}
}

func TestStoreUpdateNotifies(t *testing.T) {
	store := NewStore(Default())

	var calls int
	var gotCurrent, gotPrevious Settings
	store.Subscribe(func(current, previous Settings) {
		calls++
		gotCurrent, gotPrevious = current, previous
	})

	next := Default()
	next.MaxLives = 3
	store.Update(next)

	if calls != 1 {
		t.Fatalf("Expected 1 notification, got %d", calls)
	}
	if gotCurrent.MaxLives != 3 || gotPrevious.MaxLives != DefaultMaxLives {
		t.Errorf("Unexpected notification payload: current=%+v previous=%+v", gotCurrent, gotPrevious)
	}

	// Identical update is silent
	store.Update(next)
	if calls != 1 {
		t.Errorf("Expected no notification for unchanged settings, got %d calls", calls)
	}
}

func TestStoreModify(t *testing.T) {
	store := NewStore(Default())

	got := store.Modify(func(s *Settings) {
		s.CountdownSteps = 99
	})

	if got.CountdownSteps != MaxCountdownSteps {
		t.Errorf("Expected clamped countdown %d, got %d", MaxCountdownSteps, got.CountdownSteps)
	}
	if store.Settings() != got {
		t.Errorf("Expected stored settings %+v, got %+v", got, store.Settings())
	}
}

func TestCycle(t *testing.T) {
	options := []int{3, 5, 7}
	tests := []struct {
		current, want int
	}{
		{3, 5},
		{5, 7},
		{7, 3},
		{4, 3},
	}
	for _, tt := range tests {
		if got := Cycle(tt.current, options); got != tt.want {
			t.Errorf("Cycle(%d) = %d, want %d", tt.current, got, tt.want)
		}
	}
	if got := Cycle(4, nil); got != 4 {
		t.Errorf("Expected unchanged value with no options, got %d", got)
	}
}
