package list

import (
	"sync"

	"github.com/pkg/errors"
)

// Cloner makes a deep copy of a single list value.
type Cloner[T any] interface {
	Clone(v T) (T, error)
}

// ClonerFunc is an adapter to use ordinary functions as Cloner.
type ClonerFunc[T any] func(v T) (T, error)

// Clone calls f(v).
func (f ClonerFunc[T]) Clone(v T) (T, error) {
	return f(v)
}

// CloneFunc returns a copy of list l with every value copied by c.
// The first cloner error stops copying and is returned wrapped with the value index.
func (l *ForwardList[T]) CloneFunc(c Cloner[T]) (*ForwardList[T], error) {
	return l.cloneFuncWith(c, l.pool)
}

// AssignFunc replaces contents of list l with a copy of other made by c.
// If c fails l is left unmodified.
func (l *ForwardList[T]) AssignFunc(other *ForwardList[T], c Cloner[T]) error {
	tmp, err := other.cloneFuncWith(c, l.pool)
	if err != nil {
		return err
	}
	l.Swap(tmp)
	tmp.Clear()
	return nil
}

func (l *ForwardList[T]) cloneFuncWith(c Cloner[T], pool *sync.Pool) (*ForwardList[T], error) {
	tmp := NewPooled[T](pool)
	pos := &tmp.root
	i := 0
	for e := l.root.next; e != nil; e = e.next {
		v, err := c.Clone(e.value)
		if err != nil {
			// Release already copied nodes
			tmp.Clear()
			return nil, errors.Wrapf(err, "failed to clone list value %d", i)
		}
		pos = tmp.insertValue(v, pos)
		i++
	}
	return tmp, nil
}
