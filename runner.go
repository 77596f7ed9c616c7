package bistro

import (
	"fmt"
	"io"
)

func (m *StationManager) AddDishToQueue(dish IDish) {
	if !isNilDish(dish) {
		m.dishQueue.Append(dish)
	}
}

// AddDishToQueueWithRequest adjusts dish for request before queueing it.
func (m *StationManager) AddDishToQueueWithRequest(dish IDish, request DietaryRequest) {
	if !isNilDish(dish) {
		dish.DietaryAccommodations(request)
		m.dishQueue.Append(dish)
	}
}

func (m *StationManager) DishQueue() []IDish {
	return m.dishQueue.ToSlice()
}

func (m *StationManager) SetDishQueue(dishes []IDish) {
	m.dishQueue.Clear()
	for _, d := range dishes {
		m.AddDishToQueue(d)
	}
}

func (m *StationManager) QueueLength() int {
	return m.dishQueue.Length()
}

func (m *StationManager) DisplayDishQueue(w io.Writer) {
	m.dishQueue.Range(func(_ int, d IDish) bool {
		_, _ = fmt.Fprintln(w, d.Name())
		return true
	})
}

// ClearDishQueue drops every queued dish reference.
func (m *StationManager) ClearDishQueue() {
	m.dishQueue.Clear()
}

// PrepareNextDish takes the head of the queue to the first station able to prepare it,
// or sends it back to the tail.
func (m *StationManager) PrepareNextDish() bool {
	dish, ok := m.dishQueue.PopFront()
	if !ok {
		return false
	}
	prepared := false
	m.Range(func(_ int, s *KitchenStation) bool {
		prepared = s.CanCompleteOrder(dish.Name()) && s.PrepareDish(dish.Name())
		return !prepared
	})
	if !prepared {
		m.dishQueue.Append(dish)
		m.logger.Debug().Str("dish", dish.Name()).Msg("requeued")
	}
	return prepared
}

// ProcessAllDishes runs one pass over the dishes queued when it starts.
// Dishes nobody could prepare go back to the tail in their original relative order.
func (m *StationManager) ProcessAllDishes() {
	var (
		passId = PassIdGenerator()
		n      = m.dishQueue.Length()
		emit   = func(kind EventKind, station, dish string) {
			if m.sink != nil {
				m.sink.Emit(Event{Kind: kind, Station: station, Dish: dish, PassId: passId})
			}
		}
	)
	m.logger.Debug().Str("passId", passId).Int("dishes", n).Msg("pass started")
	for i := 0; i < n; i++ {
		dish, _ := m.dishQueue.PopFront()
		name := dish.Name()
		emit(EventPreparingDish, "", name)
		prepared := false
		m.Range(func(_ int, s *KitchenStation) bool {
			emit(EventAttempt, s.Name(), name)
			if !s.HasDish(name) {
				emit(EventNotAvailable, s.Name(), name)
				return true
			}
			if s.CanCompleteOrder(name) && s.PrepareDish(name) {
				emit(EventPrepared, s.Name(), name)
				prepared = true
				return false
			}
			emit(EventInsufficient, s.Name(), name)
			m.replenishFor(s, dish)
			if s.CanCompleteOrder(name) && s.PrepareDish(name) {
				emit(EventReplenished, s.Name(), name)
				emit(EventPrepared, s.Name(), name)
				prepared = true
				return false
			}
			emit(EventReplenishFailed, s.Name(), name)
			return true
		})
		if !prepared {
			m.dishQueue.Append(dish)
			emit(EventNotPrepared, "", name)
		}
	}
	emit(EventPassComplete, "", "")
	m.logger.Debug().Str("passId", passId).Int("remaining", m.dishQueue.Length()).Msg("pass finished")
}

// replenishFor pushes each required ingredient of dish into the backup pool,
// then makes one transfer attempt of the required quantity onto the station.
func (m *StationManager) replenishFor(s *KitchenStation, dish IDish) {
	for _, ing := range dish.Ingredients() {
		if ing.RequiredQuantity <= 0 {
			continue
		}
		m.AddBackupIngredient(Ingredient{Name: ing.Name, Quantity: ing.RequiredQuantity, Price: ing.Price})
		m.ReplenishStationIngredientFromBackup(s.Name(), ing.Name, ing.RequiredQuantity)
	}
}
