package chunk

import kertas "github.com/prasetya/kertas"

// balance pushes raw blocks toward the [min, max] size band in a single
// left-to-right pass. Oversized blocks are re-split, with the pieces
// replacing the block in place so the same pass re-tests them: a short
// split tail can still absorb the next block. An undersized block merges
// forward while the result stays under max. The pass never revisits
// output it has already produced, and split pieces never exceed max, so
// it terminates in one sweep.
func balance(blocks []Block, cfg Config) []Block {
	if len(blocks) == 0 {
		return nil
	}

	work := append([]Block(nil), blocks...)

	var out []Block
	for i := 0; i < len(work); i++ {
		b := work[i]

		if len(b.Content) > cfg.MaxSize {
			pieces := splitText(b.Content, cfg.MaxSize)
			split := make([]Block, len(pieces))
			for j, piece := range pieces {
				split[j] = Block{Content: piece, Label: b.Label, Method: kertas.MethodSplit}
			}
			work = append(work[:i], append(split, work[i+1:]...)...)
			i--
			continue
		}

		// Merge forward while undersized and the neighbor fits. The merged
		// block keeps the first block's label.
		for len(b.Content) < cfg.MinSize && i+1 < len(work) &&
			len(b.Content)+1+len(work[i+1].Content) <= cfg.MaxSize {
			b = Block{
				Content: b.Content + "\n" + work[i+1].Content,
				Label:   b.Label,
				Method:  kertas.MethodMerged,
			}
			i++
		}

		out = append(out, b)
	}
	return out
}
