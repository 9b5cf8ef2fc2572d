package lru

import "sync"

type node[K comparable, V any] struct {
	key  K
	val  V
	prev *node[K, V]
	next *node[K, V]
}

// Cache is a fixed-capacity LRU map safe for concurrent use.
type Cache[K comparable, V any] struct {
	mx       sync.Mutex
	capacity int
	items    map[K]*node[K, V]
	head     *node[K, V] // most recently used
	tail     *node[K, V] // next to evict
}

func New[K comparable, V any](capacity int) *Cache[K, V] {
	return &Cache[K, V]{
		capacity: capacity,
		items:    make(map[K]*node[K, V], capacity),
	}
}

func (c *Cache[K, V]) detach(n *node[K, V]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		c.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		c.tail = n.prev
	}
	n.prev, n.next = nil, nil
}

func (c *Cache[K, V]) push(n *node[K, V]) {
	n.next = c.head
	if c.head != nil {
		c.head.prev = n
	}
	c.head = n
	if c.tail == nil {
		c.tail = n
	}
}

func (c *Cache[K, V]) Put(k K, v V) {
	c.mx.Lock()
	defer c.mx.Unlock()

	if n, ok := c.items[k]; ok {
		n.val = v
		c.detach(n)
		c.push(n)
		return
	}

	if len(c.items) == c.capacity {
		evict := c.tail
		c.detach(evict)
		delete(c.items, evict.key)
	}

	n := &node[K, V]{key: k, val: v}
	c.items[k] = n
	c.push(n)
}

func (c *Cache[K, V]) Get(k K) (v V, ok bool) { //nolint:ireturn // returns generic interface (V) of type param any
	c.mx.Lock()
	defer c.mx.Unlock()

	n, ok := c.items[k]
	if !ok {
		return v, false
	}

	c.detach(n)
	c.push(n)
	return n.val, true
}

func (c *Cache[K, V]) Len() int {
	c.mx.Lock()
	defer c.mx.Unlock()

	return len(c.items)
}

// Keys lists cached keys, most recently used first.
func (c *Cache[K, V]) Keys() (keys []K) {
	c.mx.Lock()
	defer c.mx.Unlock()

	for n := c.head; n != nil; n = n.next {
		keys = append(keys, n.key)
	}
	return keys
}
