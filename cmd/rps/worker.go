package main

import (
	"context"
	"math/rand/v2"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"lukechampine.com/uint128"

	"github.com/cryptonstudio/crypton-forward-list/types/list"
)

type operation int

const (
	opPushFront operation = iota
	opInsertAfter
	opEraseAfter
	opPopFront
	opAssign
	opReverse
	opCount
)

var operationNames = [opCount]string{
	opPushFront:   "push_front",
	opInsertAfter: "insert_after",
	opEraseAfter:  "erase_after",
	opPopFront:    "pop_front",
	opAssign:      "assign",
	opReverse:     "reverse",
}

// ctxCheckPeriod is amount of operations between context checks.
const ctxCheckPeriod = 4096

// Worker drives its own list with a random mix of operations.
// Lists are never shared between workers.
type Worker struct {
	log      *zap.Logger
	list     *list.ForwardList[uint64]
	pos      list.Iterator[uint64] // insertion cursor, always a live node or before begin
	rnd      *rand.Rand
	maxLen   int
	ops      [opCount]uint64
	checksum uint128.Uint128 // sum of all removed values
}

// NewWorker creates new Worker instance. Pool may be nil.
func NewWorker(id uint64, pool *sync.Pool, maxLen int, log *zap.Logger) *Worker {
	w := &Worker{
		log:    log.With(zap.Uint64("worker", id)),
		list:   list.NewPooled[uint64](pool),
		rnd:    rand.New(rand.NewPCG(id, id^0x9e3779b97f4a7c15)),
		maxLen: maxLen,
	}
	w.pos = w.list.BeforeBegin()
	return w
}

// Run executes count operations or stops when ctx is canceled.
func (w *Worker) Run(ctx context.Context, count int) error {
	for i := range count {
		if i%ctxCheckPeriod == 0 {
			if err := ctx.Err(); err != nil {
				return errors.WithStack(err)
			}
		}
		w.step(uint64(i))
	}
	w.list.Clear()
	w.log.Debug("Worker finished", zap.Uint64("checksum_lo", w.checksum.Lo), zap.Uint64("checksum_hi", w.checksum.Hi))
	return nil
}

// Operations returns amount of executed operations per kind.
func (w *Worker) Operations() [opCount]uint64 {
	return w.ops
}

// Checksum returns sum of all values removed from the list.
func (w *Worker) Checksum() uint128.Uint128 {
	return w.checksum
}

func (w *Worker) step(v uint64) {
	if w.list.Len() >= w.maxLen {
		w.popFront()
		return
	}
	switch r := w.rnd.IntN(1000); {
	case r < 400:
		w.list.PushFront(v)
		w.ops[opPushFront]++
	case r < 650:
		it := w.list.InsertAfter(w.pos, v)
		// Move the cursor forward from time to time
		if r%2 == 0 {
			w.pos = it
		}
		w.ops[opInsertAfter]++
	case r < 800:
		next := w.pos
		next.Next()
		if next.IsEnd() {
			w.popFront()
			return
		}
		w.checksum = w.checksum.Add64(*next.Value())
		w.list.EraseAfter(w.pos)
		w.ops[opEraseAfter]++
	case r < 995:
		w.popFront()
	case r < 998:
		w.list.Reverse()
		w.ops[opReverse]++
	default:
		w.list.Assign(w.list.Clone())
		w.pos = w.list.BeforeBegin()
		w.ops[opAssign]++
	}
}

func (w *Worker) popFront() {
	if w.list.IsEmpty() {
		return
	}
	// The cursor may point to the first node
	w.pos = w.list.BeforeBegin()
	w.checksum = w.checksum.Add64(w.list.PopFront())
	w.ops[opPopFront]++
}
