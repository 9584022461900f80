package event

import "testing"

func TestDispatchOrderAndFiltering(t *testing.T) {
	d := NewDispatcher()
	var got []string
	d.Subscribe(EnemyKilled, ListenerFunc(func(e Event) { got = append(got, "first") }))
	d.Subscribe(EnemyKilled, ListenerFunc(func(e Event) { got = append(got, "second") }))
	d.Subscribe(WaveStarted, ListenerFunc(func(e Event) { got = append(got, "wave") }))
	d.SubscribeAll(ListenerFunc(func(e Event) { got = append(got, "all:"+string(e.Type)) }))

	d.Dispatch(Event{Type: EnemyKilled, Data: EnemyData{Amount: 2}})

	want := []string{"first", "second", "all:EnemyKilled"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestNilDispatcherDropsEvents(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Type: GameWon})
}
