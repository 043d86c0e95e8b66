package spawn

import "fmt"

// Pending is one deferred placement. Type may be empty, in which case the
// queue's default type applies at drain time.
type Pending struct {
	X, Y int
	Type string
}

// Queue accumulates deferred placements of one kind (walls, doors, torches,
// lava, actors). Not safe for concurrent use; the Architect owns its queues.
type Queue struct {
	defaultType string
	pending     []Pending
}

// NewQueue returns an empty queue whose untyped entries drain as defaultType
func NewQueue(defaultType string) *Queue {
	return &Queue{defaultType: defaultType}
}

// Add appends a placement with the queue's default type
func (q *Queue) Add(x, y int) {
	q.pending = append(q.pending, Pending{X: x, Y: y})
}

// AddTyped appends a placement with an explicit type
func (q *Queue) AddTyped(x, y int, actorType string) {
	q.pending = append(q.pending, Pending{X: x, Y: y, Type: actorType})
}

// Len returns the number of pending placements
func (q *Queue) Len() int {
	return len(q.pending)
}

// Pending returns the queued placements. The slice is live; callers must not
// hold it across a Drain.
func (q *Queue) Pending() []Pending {
	return q.pending
}

// Clear drops all pending placements
func (q *Queue) Clear() {
	q.pending = nil
}

// Drain instantiates every pending placement through the context and returns
// the number of actors created. With a nil context the queue is left intact
// for a later retry. A position whose type has no actor data is logged and
// skipped; the rest of the batch still proceeds. After the batch the queue is
// cleared, so a second drain creates nothing.
func (q *Queue) Drain(ctx Context, logMessage func(string)) int {
	if logMessage == nil {
		logMessage = func(string) {}
	}
	if len(q.pending) == 0 {
		return 0
	}
	if ctx == nil {
		logMessage(fmt.Sprintf("spawn: no entity context, keeping %d pending %s placements", len(q.pending), q.defaultType))
		return 0
	}

	// Actor data cached per type; wall queues hit the same few types for
	// every cell
	cache := make(map[string]*ActorDef)
	created := 0
	for _, p := range q.pending {
		actorType := p.Type
		if actorType == "" {
			actorType = q.defaultType
		}
		data, ok := cache[actorType]
		if !ok {
			data = ctx.GetActorData(actorType)
			cache[actorType] = data
		}
		if data == nil {
			logMessage(fmt.Sprintf("spawn: no actor data for %q at (%d,%d), skipping", actorType, p.X, p.Y))
			continue
		}
		if _, err := ctx.CreateActor(p.X, p.Y, actorType, data); err != nil {
			logMessage(fmt.Sprintf("spawn: create %q at (%d,%d): %v", actorType, p.X, p.Y, err))
			continue
		}
		created++
	}
	q.pending = nil
	return created
}
