package bistro

import (
	"strconv"
	"testing"
)

func BenchmarkProcessAllDishes(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		k := newDemoKitchen()
		k.manager.SetSink(nil)
		k.manager.ProcessAllDishes()
	}
}

func BenchmarkFindStation(b *testing.B) {
	m := NewStationManager()
	for i := 0; i < 64; i++ {
		m.AddStation(NewKitchenStation("Station " + strconv.Itoa(i)))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if m.FindStation("Station 63") == nil {
			b.Fatal("missing station")
		}
	}
}
