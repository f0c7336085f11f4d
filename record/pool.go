package record

import (
	"context"
	"time"

	pool "github.com/jolestar/go-commons-pool/v2"
	"github.com/rs/zerolog/log"
)

const AreaEvictionPolicyName = "StrSafeAreaEvictionPolicy"

const (
	// areaSoftEvictIdleTime is how long an area above MinIdle may sit idle.
	areaSoftEvictIdleTime = 30 * time.Second
	areaEvictionInterval  = 60 * time.Second
)

func init() {
	pool.RegistryEvictionPolicy(AreaEvictionPolicyName, &EvictionPolicy{})
}

// Area is a fixed-capacity record buffer borrowed from an AreaPool.
type Area struct {
	buf  []byte
	n    int
	pool *AreaPool
}

// Bytes returns the marshalled record. It is only valid until Release.
func (a *Area) Bytes() []byte { return a.buf[:a.n] }

func (a *Area) Cap() int { return len(a.buf) }

func (a *Area) Release(ctx context.Context) error {
	return a.pool.Return(ctx, a)
}

// EvictionPolicy drops an idle area once it outlives IdleEvictTime, or
// IdleSoftEvictTime while the pool holds more than MinIdle areas.
type EvictionPolicy struct {
}

func (p *EvictionPolicy) Evict(config *pool.EvictionConfig, underTest *pool.PooledObject, idleCount int) bool {
	idle := underTest.GetIdleTime()
	expired := config.IdleEvictTime < idle
	surplus := config.MinIdle < idleCount && config.IdleSoftEvictTime < idle
	log.Trace().
		Dur("idle", idle).
		Int("idle-areas", idleCount).
		Bool("expired", expired).
		Bool("surplus", surplus).
		Msg("record area eviction check")
	return expired || surplus
}

type AreaFactory struct {
	Size    int
	Metrics *Metrics
}

func (f *AreaFactory) MakeObject(ctx context.Context) (*pool.PooledObject, error) {
	log.Trace().Int("size", f.Size).Msg("Make area")
	f.Metrics.CreateArea.Add(ctx, 1)
	return pool.NewPooledObject(&Area{buf: make([]byte, f.Size)}), nil
}

func (f *AreaFactory) DestroyObject(ctx context.Context, object *pool.PooledObject) error {
	log.Trace().Msg("Destroy area")
	f.Metrics.DestroyArea.Add(ctx, 1)
	return nil
}

func (f *AreaFactory) ValidateObject(ctx context.Context, object *pool.PooledObject) bool {
	a, ok := object.Object.(*Area)
	if !ok || len(a.buf) != f.Size {
		log.Trace().Msg("Area not valid")
		return false
	}
	return true
}

func (f *AreaFactory) ActivateObject(ctx context.Context, object *pool.PooledObject) error {
	return nil
}

// PassivateObject wipes an area on its way back so no record content
// outlives its borrower.
func (f *AreaFactory) PassivateObject(ctx context.Context, object *pool.PooledObject) error {
	a := object.Object.(*Area)
	clear(a.buf)
	a.n = 0
	return nil
}

type AreaPool struct {
	p       *pool.ObjectPool
	size    int
	metrics *Metrics
}

func NewAreaPool(ctx context.Context, config *Config, metrics *Metrics) *AreaPool {
	pc := pool.NewDefaultPoolConfig()
	pc.LIFO = true
	pc.MaxTotal = config.MaxTotal
	pc.MaxIdle = config.MaxIdle
	pc.MinIdle = config.MinIdle
	pc.TestOnBorrow = true
	pc.TestOnReturn = true
	pc.TestWhileIdle = true
	pc.BlockWhenExhausted = true
	pc.MinEvictableIdleTime = time.Duration(config.MaxIdleLifeTime) * time.Second
	pc.SoftMinEvictableIdleTime = areaSoftEvictIdleTime
	pc.NumTestsPerEvictionRun = 1
	pc.EvictionPolicyName = AreaEvictionPolicyName
	pc.TimeBetweenEvictionRuns = areaEvictionInterval
	return &AreaPool{
		p:       pool.NewObjectPool(ctx, &AreaFactory{Size: config.RecordLength, Metrics: metrics}, pc),
		size:    config.RecordLength,
		metrics: metrics,
	}
}

func (ap *AreaPool) Size() int { return ap.size }

func (ap *AreaPool) Borrow(ctx context.Context) (*Area, error) {
	object, err := ap.p.BorrowObject(ctx)
	if err != nil {
		log.Error().Msgf("Error getting area from pool: %v", err)
		return nil, technicalError(err)
	}
	a := object.(*Area)
	a.pool = ap
	ap.metrics.ActiveArea.Add(ctx, 1)
	return a, nil
}

func (ap *AreaPool) Return(ctx context.Context, a *Area) error {
	if err := ap.p.ReturnObject(ctx, a); err != nil {
		log.Error().Err(err).Msg("error returning area to pool")
		return technicalError(err)
	}
	ap.metrics.ActiveArea.Add(ctx, -1)
	return nil
}

func (ap *AreaPool) NumActive() int { return ap.p.GetNumActive() }

func (ap *AreaPool) NumIdle() int { return ap.p.GetNumIdle() }

func (ap *AreaPool) Close(ctx context.Context) {
	log.Info().Msg("Closing record area pool")
	ap.p.Close(ctx)
}
