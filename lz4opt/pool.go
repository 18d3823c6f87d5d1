// SPDX-License-Identifier: MIT
// Source: github.com/smalz4/smalz4go

package lz4opt

import "sync"

// chainStorePool recycles chainStore instances across Compress calls, the
// same low-allocation idiom the teacher applies to its sliding-window
// dictionary (sliding_window_pool.go): the hash table and distance rings
// are large fixed-size arrays that are wasteful to allocate per call.
var chainStorePool = sync.Pool{
	New: func() any {
		return newChainStore()
	},
}

func acquireChainStore() *chainStore {
	cs := chainStorePool.Get().(*chainStore)
	cs.reset()
	return cs
}

func releaseChainStore(cs *chainStore) {
	if cs == nil {
		return
	}
	chainStorePool.Put(cs)
}
