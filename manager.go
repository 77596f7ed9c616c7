package bistro

import (
	"os"

	"github.com/go-preform/bistro/chain"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	PassIdGenerator = uuid.NewString
)

// StationManager is the station registry. Stations are borrowed from the caller,
// relocating one moves the pointer and never copies the record.
type StationManager struct {
	chain.Chain[*KitchenStation]
	dishQueue chain.Chain[IDish]
	backup    []Ingredient
	sink      IEventSink
	logger    *zerolog.Logger
}

func NewStationManager() *StationManager {
	nop := zerolog.Nop()
	return &StationManager{sink: NewConsoleSink(os.Stdout), logger: &nop}
}

func (m *StationManager) SetSink(sink IEventSink) *StationManager {
	m.sink = sink
	return m
}

func (m *StationManager) SetLogger(l *zerolog.Logger) *StationManager {
	if l == nil {
		nop := zerolog.Nop()
		l = &nop
	}
	m.logger = l
	return m
}

func (m *StationManager) AddStation(station *KitchenStation) bool {
	if station == nil {
		return false
	}
	m.Append(station)
	m.logger.Debug().Str("station", station.Name()).Int("stations", m.Length()).Msg("station added")
	return true
}

func (m *StationManager) RemoveStation(name string) bool {
	if i := m.StationIndex(name); i >= 0 {
		m.logger.Debug().Str("station", name).Msg("station removed")
		return m.Remove(i)
	}
	return false
}

func (m *StationManager) FindStation(name string) *KitchenStation {
	var found *KitchenStation
	m.Range(func(_ int, s *KitchenStation) bool {
		if s.Name() == name {
			found = s
			return false
		}
		return true
	})
	return found
}

// StationIndex is the registry position of the first station named name, or -1.
func (m *StationManager) StationIndex(name string) int {
	return m.IndexFunc(func(s *KitchenStation) bool {
		return s.Name() == name
	})
}

func (m *StationManager) Stations() []*KitchenStation {
	return m.ToSlice()
}

func (m *StationManager) MoveStationToFront(name string) bool {
	i := m.StationIndex(name)
	if i < 0 {
		return false
	}
	if i == 0 {
		return true
	}
	station, _ := m.Get(i)
	m.Remove(i)
	m.Insert(0, station)
	m.logger.Debug().Str("station", name).Int("from", i).Msg("station moved to front")
	return true
}

// MergeStations moves every dish and stock line of name2 into name1, then drops name2 from the registry.
func (m *StationManager) MergeStations(name1, name2 string) bool {
	var (
		dst = m.FindStation(name1)
		src = m.FindStation(name2)
	)
	if dst == nil || src == nil || dst == src {
		return false
	}
	for _, d := range src.Dishes() {
		dst.AssignDish(d)
	}
	for _, ing := range src.IngredientsStock() {
		dst.Replenish(ing)
	}
	m.RemoveStation(name2)
	m.logger.Debug().Str("into", name1).Str("from", name2).Msg("stations merged")
	return true
}

func (m *StationManager) AssignDishToStation(name string, dish IDish) bool {
	if station := m.FindStation(name); station != nil {
		return station.AssignDish(dish)
	}
	return false
}

func (m *StationManager) ReplenishIngredientAtStation(name string, ingredient Ingredient) bool {
	if station := m.FindStation(name); station != nil {
		station.Replenish(ingredient)
		return true
	}
	return false
}

func (m *StationManager) CanCompleteOrder(dishName string) bool {
	return m.IndexFunc(func(s *KitchenStation) bool {
		return s.CanCompleteOrder(dishName)
	}) >= 0
}

func (m *StationManager) PrepareDishAtStation(name, dishName string) bool {
	station := m.FindStation(name)
	if station == nil || !station.CanCompleteOrder(dishName) {
		return false
	}
	return station.PrepareDish(dishName)
}
