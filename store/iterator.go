package store

import (
	"bytes"

	"github.com/google/btree"
	"github.com/iov-one/vault/errors"
)

// rangeItems copies all cached changes with a key in [start, end) out of
// the tree. Nil start or end leaves that side open. The copy lets callers
// write to the cache while iterating.
func rangeItems(tree *btree.BTree, start, end []byte, descending bool) []cacheItem {
	var res []cacheItem
	collect := func(i btree.Item) bool {
		res = append(res, i.(cacheItem))
		return true
	}

	switch {
	case start == nil && end == nil:
		tree.Ascend(collect)
	case start == nil:
		tree.AscendLessThan(cacheItem{key: end}, collect)
	case end == nil:
		tree.AscendGreaterOrEqual(cacheItem{key: start}, collect)
	default:
		tree.AscendRange(cacheItem{key: start}, cacheItem{key: end}, collect)
	}

	if descending {
		for i, j := 0, len(res)-1; i < j; i, j = i+1, j-1 {
			res[i], res[j] = res[j], res[i]
		}
	}
	return res
}

// cacheIterator merges cached changes with the parent iterator. Both
// sources must be ordered in the same direction.
type cacheIterator struct {
	parent     Iterator
	parentDone bool
	items      []cacheItem
	descending bool

	// head of the parent iterator, valid when hasHead is set
	head    Model
	hasHead bool
}

var _ Iterator = (*cacheIterator)(nil)

func newCacheIterator(parent Iterator, items []cacheItem, descending bool) *cacheIterator {
	return &cacheIterator{
		parent:     parent,
		items:      items,
		descending: descending,
	}
}

func (c *cacheIterator) Next() (key, value []byte, err error) {
	for {
		if err := c.fill(); err != nil {
			return nil, nil, err
		}

		if len(c.items) == 0 {
			if !c.hasHead {
				return nil, nil, errors.Wrap(errors.ErrIteratorDone, "cache iterator")
			}
			c.hasHead = false
			return c.head.Key, c.head.Value, nil
		}

		item := c.items[0]
		if c.hasHead {
			order := bytes.Compare(item.key, c.head.Key)
			if c.descending {
				order = -order
			}
			if order > 0 {
				c.hasHead = false
				return c.head.Key, c.head.Value, nil
			}
			if order == 0 {
				// shadowed by the cache
				c.hasHead = false
			}
		}

		c.items = c.items[1:]
		if !item.deleted {
			return item.key, item.value, nil
		}
	}
}

// fill reads the next parent element unless one is already buffered.
func (c *cacheIterator) fill() error {
	if c.hasHead || c.parentDone {
		return nil
	}
	key, value, err := c.parent.Next()
	switch {
	case errors.ErrIteratorDone.Is(err):
		c.parentDone = true
		return nil
	case err != nil:
		return err
	}
	c.head = Pair(key, value)
	c.hasHead = true
	return nil
}

func (c *cacheIterator) Release() {
	c.parent.Release()
	c.items = nil
	c.hasHead = false
}
