package memory

import "meowshunt/internal/catalog"

// LoadCatalog replaces the reference data with c. Player data is untouched.
func (s *Store) LoadCatalog(c catalog.Catalog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.ranks)
	clear(s.items)
	clear(s.locations)
	clear(s.meows)
	clear(s.spawns)
	clear(s.shop)
	for _, r := range c.Ranks {
		s.ranks[r.ID] = r.Domain()
	}
	for _, l := range c.Locations {
		s.locations[l.ID] = l.Domain()
	}
	for _, it := range c.Items {
		s.items[it.ID] = it.Domain()
		for _, loc := range it.Shops {
			s.shop[loc] = append(s.shop[loc], it.ID)
		}
	}
	for _, m := range c.Meows {
		s.meows[m.ID] = m.Domain()
		for _, sp := range m.Spawns {
			s.spawns[sp.LocationID] = append(s.spawns[sp.LocationID], spawnRow{meowID: m.ID, chance: sp.Chance})
		}
	}
}
