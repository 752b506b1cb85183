package lockingqueue

import "errors"

// ErrQueueEmpty is returned by Pop when no element is available: either the
// call was non-blocking and the queue was empty, or the timeout elapsed
// before an element arrived. It carries no further detail.
var ErrQueueEmpty = errors.New("lockingqueue: queue is empty")
