package cache

import (
	"container/list"
	"errors"
	"sync"
	"time"
)

type ttlEntry struct {
	key     string
	value   interface{}
	expires time.Time
}

// TTL is a fixed size cache whose entries expire.
// When it's full the least recently used entry is evicted.
type TTL struct {
	lock         sync.Mutex
	size         int
	ttl          time.Duration
	evictionList *list.List
	items        map[string]*list.Element
	now          func() time.Time
}

func NewTTL(size int, ttl time.Duration) (*TTL, error) {
	if size <= 0 {
		return nil, errors.New("size must be > 0")
	}
	return &TTL{
		size:         size,
		ttl:          ttl,
		evictionList: list.New(),
		items:        make(map[string]*list.Element),
		now:          time.Now,
	}, nil
}

// Add stores a value, replacing any existing one and refreshing its expiry.
func (c *TTL) Add(key string, value interface{}) {
	c.lock.Lock()
	defer c.lock.Unlock()
	expires := c.now().Add(c.ttl)
	if el, ok := c.items[key]; ok {
		c.evictionList.MoveToFront(el)
		ent := el.Value.(*ttlEntry)
		ent.value = value
		ent.expires = expires
		return
	}
	c.items[key] = c.evictionList.PushFront(&ttlEntry{key: key, value: value, expires: expires})
	for c.evictionList.Len() > c.size {
		c.remove(c.evictionList.Back())
	}
}

// Get returns a value if it's present and hasn't expired.
func (c *TTL) Get(key string) (interface{}, bool) {
	c.lock.Lock()
	defer c.lock.Unlock()
	el, ok := c.items[key]
	if !ok {
		return nil, false
	}
	ent := el.Value.(*ttlEntry)
	if !c.now().Before(ent.expires) {
		c.remove(el)
		return nil, false
	}
	c.evictionList.MoveToFront(el)
	return ent.value, true
}

func (c *TTL) Remove(key string) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if el, ok := c.items[key]; ok {
		c.remove(el)
	}
}

func (c *TTL) Len() int {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.evictionList.Len()
}

func (c *TTL) remove(el *list.Element) {
	c.evictionList.Remove(el)
	delete(c.items, el.Value.(*ttlEntry).key)
}
