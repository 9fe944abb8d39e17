package gen

// VoidGenerator generates empty chunks.
type VoidGenerator struct{}

func (VoidGenerator) Generate(_, _ int) *ChunkData { return &ChunkData{} }

func (VoidGenerator) HeightAt(_, _ int) int { return -1 }
