package topo

import (
	"hash/fnv"

	"github.com/netsim-lab/brite-as/topo/random"
)

// GenerationKey is the master seed of one generation run. The same key,
// configuration and edge order reproduce the same graph.
type GenerationKey int64

func NewGenerationKey(seed int64) GenerationKey {
	return GenerationKey(seed)
}

// Streams drawn by an ASModel. Placement consumes coordinates and cluster
// sizes; bandwidth consumes one value per edge.
const (
	SubsystemPlacement = "placement"
	SubsystemBandwidth = "bandwidth"
)

// PartitionedRNG hands out one sampler per named stream, each seeded with
// key ^ fnv1a64(name). Streams never share state, so the number of draws made
// for placement does not change the bandwidth values.
//
// Not safe for concurrent use.
type PartitionedRNG struct {
	key     GenerationKey
	streams map[string]*random.Sampler
}

func NewPartitionedRNG(key GenerationKey) *PartitionedRNG {
	return &PartitionedRNG{key: key, streams: make(map[string]*random.Sampler)}
}

// ForSubsystem returns the sampler for name, creating it on first use.
func (p *PartitionedRNG) ForSubsystem(name string) *random.Sampler {
	s, ok := p.streams[name]
	if !ok {
		s = random.NewSeeded(uint64(int64(p.key) ^ fnv1a64(name)))
		p.streams[name] = s
	}
	return s
}

func (p *PartitionedRNG) Key() GenerationKey { return p.key }

func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
