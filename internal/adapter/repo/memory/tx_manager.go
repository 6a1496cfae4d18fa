package memory

import "context"

type TxManager struct {
	store *Store
}

func NewTxManager(store *Store) TxManager {
	return TxManager{store: store}
}

// RunInTx serializes transactions on the store lock and restores player data
// when fn fails. Nested calls join the outer transaction.
func (t TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if inTx(ctx) {
		return fn(ctx)
	}
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	before := t.store.players.clone()
	if err := fn(context.WithValue(ctx, txKey, true)); err != nil {
		t.store.players = before
		return err
	}
	return nil
}
