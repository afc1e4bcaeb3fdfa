package profiles

import "sort"

// Subscribe registers fn to be called after every UpdateApps. Calls happen
// synchronously on the updating goroutine, in subscription order. The
// returned function removes the subscription. A nil fn is ignored.
func (s *Store) Subscribe(fn func()) (cancel func()) {
	if fn == nil {
		return func() {}
	}

	s.subsMu.Lock()
	defer s.subsMu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.subsMu.Lock()
		defer s.subsMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) notifyAppListChanged() {
	s.subsMu.Lock()
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, s.subs[id])
	}
	s.subsMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
