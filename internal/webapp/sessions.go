package webapp

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/goliatone/go-confform/pkg/submission"
	"github.com/goliatone/go-confform/pkg/toast"
)

// session is one browser's form instance.
type session struct {
	id         string
	csrf       string
	controller *submission.Controller
	toasts     *toast.Queue
}

// sessionStore keeps form instances with a sliding idle expiry.
type sessionStore struct {
	items *cache.Cache
	ttl   time.Duration
	newID func() string
}

func newSessionStore(ttl, cleanup time.Duration, newID func() string) *sessionStore {
	if newID == nil {
		newID = uuid.NewString
	}
	return &sessionStore{
		items: cache.New(ttl, cleanup),
		ttl:   ttl,
		newID: newID,
	}
}

// get returns the session and refreshes its expiry.
func (s *sessionStore) get(id string) (*session, bool) {
	if id == "" {
		return nil, false
	}
	item, ok := s.items.Get(id)
	if !ok {
		return nil, false
	}
	sess, ok := item.(*session)
	if !ok {
		return nil, false
	}
	s.items.Set(id, sess, s.ttl)
	return sess, true
}

func (s *sessionStore) create(build func(queue *toast.Queue) *submission.Controller) *session {
	queue := toast.NewQueue(toast.DefaultQueueLimit)
	sess := &session{
		id:         s.newID(),
		csrf:       uuid.NewString(),
		controller: build(queue),
		toasts:     queue,
	}
	s.items.Set(sess.id, sess, s.ttl)
	return sess
}

func (s *sessionStore) count() int {
	return s.items.ItemCount()
}
