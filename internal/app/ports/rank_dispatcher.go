package ports

// RankDispatcher schedules a best-effort rank recalculation. It never blocks
// the caller on the recalculation itself.
type RankDispatcher interface {
	Dispatch(playerID string)
}
