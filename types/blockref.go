package types

import "strconv"

// BlockRef selects the block a request reads state at.
// The zero value reads at final finality.
type BlockRef struct {
	finality   *Finality
	blockID    *BlockId
	checkpoint *SyncCheckpoint
}

// AtFinality reads at the latest block with the given finality.
func AtFinality(f Finality) BlockRef {
	return BlockRef{finality: &f}
}

// AtBlockHeight reads at the block with height h.
func AtBlockHeight(h uint64) BlockRef {
	id := BlockIdAtHeight(h)
	return BlockRef{blockID: &id}
}

// AtBlockHash reads at the block with hash h.
func AtBlockHash(h CryptoHash) BlockRef {
	id := BlockIdAtHash(h)
	return BlockRef{blockID: &id}
}

// AtSyncCheckpoint reads at a sync checkpoint of the node.
func AtSyncCheckpoint(c SyncCheckpoint) BlockRef {
	return BlockRef{checkpoint: &c}
}

// BlockIdAtHeight returns the height form of a block id.
func BlockIdAtHeight(h uint64) BlockId {
	height := BlockIdBlockHeight(h)
	return BlockId{BlockHeight: &height}
}

// BlockIdAtHash returns the hash form of a block id.
func BlockIdAtHash(h CryptoHash) BlockId {
	return BlockId{CryptoHash: &h}
}

// BlockReference converts r into the wire union used by the block method.
func (r BlockRef) BlockReference() BlockReference {
	var out BlockReference
	out.Finality, out.BlockId, out.SyncCheckpoint = byBlockRef(r,
		func(f Finality) BlockReferenceFinality { return BlockReferenceFinality{Finality: f} },
		func(id BlockId) BlockReferenceBlockId { return BlockReferenceBlockId{BlockId: id} },
		func(c SyncCheckpoint) BlockReferenceSyncCheckpoint {
			return BlockReferenceSyncCheckpoint{SyncCheckpoint: c}
		},
	)
	return out
}

func (r BlockRef) String() string {
	switch {
	case r.blockID != nil && r.blockID.BlockHeight != nil:
		return "height:" + strconv.FormatUint(uint64(*r.blockID.BlockHeight), 10)
	case r.blockID != nil && r.blockID.CryptoHash != nil:
		return "hash:" + string(*r.blockID.CryptoHash)
	case r.checkpoint != nil:
		return "checkpoint:" + string(*r.checkpoint)
	case r.finality != nil:
		return "finality:" + string(*r.finality)
	}
	return "finality:" + string(FinalityFinal)
}

// byBlockRef builds the one variant of a block-scoped request that matches r.
// Exactly one of the returned pointers is set.
func byBlockRef[F, B, S any](r BlockRef, finality func(Finality) F, blockID func(BlockId) B, checkpoint func(SyncCheckpoint) S) (*F, *B, *S) {
	switch {
	case r.blockID != nil:
		v := blockID(*r.blockID)
		return nil, &v, nil
	case r.checkpoint != nil:
		v := checkpoint(*r.checkpoint)
		return nil, nil, &v
	}
	f := FinalityFinal
	if r.finality != nil {
		f = *r.finality
	}
	v := finality(f)
	return &v, nil, nil
}
