package quiz

import "sync"

// Hub diffuse des instantanés complets de la liste des quiz aux vues
// abonnées. Chaque abonnement délivre l'état courant, jamais de deltas,
// et doit être explicitement résilié via la fonction retournée par
// Subscribe pour ne pas laisser fuir d'écouteur.
type Hub struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan []*Quiz
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]chan []*Quiz)}
}

// Subscribe enregistre un abonné et retourne son canal d'instantanés
// avec la fonction de résiliation associée. La résiliation est
// idempotente.
func (h *Hub) Subscribe() (<-chan []*Quiz, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++

	ch := make(chan []*Quiz, 1)
	h.subs[id] = ch

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if sub, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Publish remplace l'instantané en attente de chaque abonné. Un abonné
// lent ne voit que l'état le plus récent, jamais un historique.
func (h *Hub) Publish(snapshot []*Quiz) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subs {
		select {
		case <-ch:
		default:
		}
		ch <- snapshot
	}
}

func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
