package server

import (
	"errors"
	"log"
	"sync"
	"time"

	"cogentcore.org/core/base/randx"

	"github.com/gravitas-games/pipeworks/internal/config"
	"github.com/gravitas-games/pipeworks/internal/network"
	"github.com/gravitas-games/pipeworks/internal/world"
	"github.com/gravitas-games/pipeworks/pkg/models"
)

// Session owns one growing world and the viewers watching it. All world
// access goes through the session mutex: the growth loop is the only
// writer, connections only read snapshots and status.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu    sync.RWMutex
	world *world.World
	rng   randx.Rand
	done  bool

	viewers map[string]*Connection

	config *config.Config
	stop   chan struct{}
	wg     sync.WaitGroup
}

// NewSession builds the world from config, seeds the random source, and
// grows the initial burst of segments before any viewer connects.
func NewSession(id string, cfg *config.Config) (*Session, error) {
	log.Printf("Creating session: %s", id)

	params, err := cfg.WorldParams()
	if err != nil {
		return nil, err
	}
	w, err := world.New(params)
	if err != nil {
		return nil, err
	}

	seed := cfg.Generation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		ID:        id,
		CreatedAt: time.Now(),
		world:     w,
		rng:       randx.NewSysRand(seed),
		viewers:   make(map[string]*Connection),
		config:    cfg,
		stop:      make(chan struct{}),
	}

	for i := 0; i < cfg.Generation.InitialSegments && !s.limitReached(); i++ {
		if _, err := w.Grow(s.rng); err != nil {
			if errors.Is(err, world.ErrGridSaturated) {
				log.Printf("Session %s: grid saturated after %d segments", id, w.SegmentCount())
				s.done = true
				break
			}
			return nil, err
		}
	}
	if s.limitReached() {
		s.done = true
	}

	log.Printf("Session %s created: %v world, %d segments grown (seed %d)",
		id, w.Bounds(), w.SegmentCount(), seed)
	return s, nil
}

// limitReached reports whether the configured segment cap has been hit.
// The caller must hold the lock once the growth loop is running.
func (s *Session) limitReached() bool {
	max := s.config.Generation.MaxSegments
	return max > 0 && s.world.SegmentCount() >= max
}

// Start launches the streaming growth loop. With tick_ms 0 the session
// stays static after the initial burst.
func (s *Session) Start() {
	tick := s.config.Generation.TickMS
	if tick <= 0 || s.done {
		log.Printf("Session %s: streaming growth disabled", s.ID)
		return
	}
	s.wg.Add(1)
	go s.run(time.Duration(tick) * time.Millisecond)
}

// Stop halts the growth loop and waits for it to exit.
func (s *Session) Stop() {
	close(s.stop)
	s.wg.Wait()
}

func (s *Session) run(interval time.Duration) {
	defer s.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if !s.growOne() {
				return
			}
		case <-s.stop:
			return
		}
	}
}

// growOne performs one growth step and broadcasts the result. It returns
// false once generation is finished.
func (s *Session) growOne() bool {
	s.mu.Lock()
	if s.done {
		s.mu.Unlock()
		return false
	}

	step, err := s.world.Grow(s.rng)
	if err != nil {
		if errors.Is(err, world.ErrGridSaturated) {
			log.Printf("Session %s: grid saturated at %d segments, stopping growth",
				s.ID, s.world.SegmentCount())
			s.done = true
			status := s.statusLocked()
			s.mu.Unlock()
			s.Broadcast(&network.ServerMessage{Type: network.MsgTypeStatus, Payload: status})
			return false
		}
		log.Printf("Session %s: growth error: %v", s.ID, err)
		s.mu.Unlock()
		return true
	}

	finished := s.limitReached()
	if finished {
		s.done = true
	}
	status := s.statusLocked()
	s.mu.Unlock()

	s.Broadcast(&network.ServerMessage{
		Type: network.MsgTypeSegment,
		Payload: network.SegmentPayload{
			Pipe:     step.Segment.Type.String(),
			Step:     step.Kind.String(),
			Instance: step.Instance,
		},
	})
	if finished {
		log.Printf("Session %s: segment limit reached, stopping growth", s.ID)
		s.Broadcast(&network.ServerMessage{Type: network.MsgTypeStatus, Payload: status})
	}
	return !finished
}

// AddViewer registers a connection and returns the snapshot it should be
// welcomed with. The snapshot copies both streams so later growth cannot
// race the marshal.
func (s *Session) AddViewer(c *Connection) network.WelcomePayload {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.viewers[c.id] = c
	log.Printf("Viewer %s joined session %s (%d watching)", c.id, s.ID, len(s.viewers))

	b := s.world.Bounds()
	straight := make([]models.Instance, len(s.world.StraightInstances()))
	copy(straight, s.world.StraightInstances())
	elbow := make([]models.Instance, len(s.world.ElbowInstances()))
	copy(elbow, s.world.ElbowInstances())

	return network.WelcomePayload{
		ClientID: c.id,
		Bounds:   [3]uint32{b.X, b.Y, b.Z},
		Straight: straight,
		Elbow:    elbow,
		Status:   s.statusLocked(),
	}
}

// RemoveViewer drops a connection from the broadcast set.
func (s *Session) RemoveViewer(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.viewers[id]; ok {
		delete(s.viewers, id)
		log.Printf("Viewer %s left session %s (%d watching)", id, s.ID, len(s.viewers))
	}
}

// Broadcast sends a message to every connected viewer.
func (s *Session) Broadcast(msg *network.ServerMessage) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, conn := range s.viewers {
		conn.SendMessage(msg)
	}
}

// Status returns the current generation progress.
func (s *Session) Status() network.StatusPayload {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.statusLocked()
}

func (s *Session) statusLocked() network.StatusPayload {
	return network.StatusPayload{
		StraightCount: len(s.world.StraightInstances()),
		ElbowCount:    len(s.world.ElbowInstances()),
		OccupiedCells: s.world.OccupiedCount(),
		TotalCells:    s.world.Bounds().Volume(),
		Done:          s.done,
		Viewers:       len(s.viewers),
		Uptime:        int64(time.Since(s.CreatedAt).Seconds()),
	}
}
