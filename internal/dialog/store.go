package dialog

import (
	"context"
	"sync"
)

// Store хранит состояния диалогов в памяти процесса: сессия живёт
// от начала расчёта до отчёта или отмены, рестарт процесса её теряет.
// Один RWMutex на всю таблицу; обработка сообщений одного чата идёт
// последовательно в цикле long polling, чаты друг друга не видят.
type Store struct {
	mu    sync.RWMutex
	items map[int64]*Item
}

func NewStore() *Store {
	return &Store{items: make(map[int64]*Item)}
}

// Get возвращает копию состояния чата.
// Если записи нет — считаем, что состояния пока нет.
func (s *Store) Get(_ context.Context, chatID int64) (*Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	it, ok := s.items[chatID]
	if !ok {
		return &Item{ChatID: chatID, State: StateIdle, Payload: Payload{}}, nil
	}
	return &Item{ChatID: chatID, State: it.State, Payload: clonePayload(it.Payload)}, nil
}

// Set создаёт или полностью перезаписывает состояние чата.
// Новый «старт» затирает любую незавершённую сессию.
func (s *Store) Set(_ context.Context, chatID int64, state State, payload Payload) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[chatID] = &Item{ChatID: chatID, State: state, Payload: clonePayload(payload)}
	return nil
}

// Reset удаляет состояние чата целиком.
func (s *Store) Reset(_ context.Context, chatID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, chatID)
	return nil
}

// clonePayload отвязывает payload от вызывающего кода,
// чтобы записи разных чатов не делили одну map.
func clonePayload(p Payload) Payload {
	out := make(Payload, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
