package bistro

// AddBackupIngredient sums into the entry of the same name or appends a new one.
func (m *StationManager) AddBackupIngredient(ingredient Ingredient) bool {
	if i := findIngredient(m.backup, ingredient.Name); i >= 0 {
		m.backup[i].Quantity += ingredient.Quantity
		return true
	}
	m.backup = append(m.backup, ingredient)
	return true
}

// AddBackupIngredients replaces the whole backup pool.
func (m *StationManager) AddBackupIngredients(ingredients []Ingredient) bool {
	m.backup = append([]Ingredient(nil), ingredients...)
	return true
}

func (m *StationManager) BackupIngredients() []Ingredient {
	return append([]Ingredient(nil), m.backup...)
}

func (m *StationManager) ClearBackupIngredients() {
	m.backup = nil
}

// ReplenishStationIngredientFromBackup moves quantity of an ingredient from the backup pool
// onto a stock line the station already carries. A station without a line for the
// ingredient is refused and nothing changes; open the line first with
// ReplenishIngredientAtStation. Entries drained to zero leave the pool.
func (m *StationManager) ReplenishStationIngredientFromBackup(stationName, ingredientName string, quantity int) bool {
	station := m.FindStation(stationName)
	if station == nil || quantity < 0 {
		return false
	}
	i := findIngredient(m.backup, ingredientName)
	if i < 0 || m.backup[i].Quantity < quantity {
		return false
	}
	if !station.Restock(ingredientName, quantity) {
		return false
	}
	m.backup[i].Quantity -= quantity
	if m.backup[i].Quantity <= 0 {
		m.backup = append(m.backup[:i], m.backup[i+1:]...)
	}
	m.logger.Debug().Str("station", stationName).Str("ingredient", ingredientName).Int("quantity", quantity).Msg("replenished from backup")
	return true
}
