package words

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// Boundary iterators are short-lived objects: SplitWords and
// CountWords create one per call and fully consume it. To avoid
// repeated allocation of small objects we pool them.
type boundariesPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalBoundariesPool *boundariesPool

func init() {
	globalBoundariesPool = &boundariesPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			b := &Boundaries{}
			return b, nil
		})
	globalBoundariesPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalBoundariesPool.opool = pool.NewObjectPool(globalBoundariesPool.ctx, factory, config)
}

// borrowBoundaries returns a pooled iterator, initialized for text.
func borrowBoundaries(text string) *Boundaries {
	o, _ := globalBoundariesPool.opool.BorrowObject(globalBoundariesPool.ctx)
	b := o.(*Boundaries)
	b.Init(text)
	return b
}

// releaseBoundaries clears the iterator and puts it back into the pool.
func releaseBoundaries(b *Boundaries) {
	b.text = ""
	b.done = true
	_ = globalBoundariesPool.opool.ReturnObject(globalBoundariesPool.ctx, b)
}
