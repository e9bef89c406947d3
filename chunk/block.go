package chunk

import kertas "github.com/prasetya/kertas"

// Block is an intermediate chunk candidate: content plus the section label
// it came from and the strategy that produced it. Blocks exist between
// segmentation and balancing; enrichment turns them into final chunks.
type Block struct {
	Content string
	Label   string
	Method  kertas.ChunkMethod
}
