package anvil

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/klauspost/compress/zlib"

	"github.com/OCharnyshevich/structure-generator/internal/world"
	"github.com/OCharnyshevich/structure-generator/internal/world/gen"
)

const (
	sectorSize      = 4096
	headerSectors   = 2 // location table + timestamp table
	compressionZlib = 2
)

// RegionPath returns the .mca file holding region (rx, rz) under dir.
func RegionPath(dir string, rx, rz int) string {
	return filepath.Join(dir, fmt.Sprintf("r.%d.%d.mca", rx, rz))
}

// SaveRegion writes all provided chunks to a .mca region file.
// chunks maps chunk positions to their uncompressed NBT data.
func SaveRegion(dir string, rx, rz int, chunks map[gen.ChunkPos][]byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create region dir: %w", err)
	}

	type chunkEntry struct {
		index      int
		compressed []byte
	}
	entries := make([]chunkEntry, 0, len(chunks))

	for pos, nbtData := range chunks {
		if pos.X>>5 != rx || pos.Z>>5 != rz {
			return fmt.Errorf("chunk (%d,%d) is not in region (%d,%d)", pos.X, pos.Z, rx, rz)
		}
		var cbuf bytes.Buffer
		zw, err := zlib.NewWriterLevel(&cbuf, zlib.DefaultCompression)
		if err != nil {
			return fmt.Errorf("create zlib writer: %w", err)
		}
		if _, err := zw.Write(nbtData); err != nil {
			return fmt.Errorf("compress chunk (%d,%d): %w", pos.X, pos.Z, err)
		}
		if err := zw.Close(); err != nil {
			return fmt.Errorf("close zlib writer: %w", err)
		}

		idx := (pos.X & 31) + (pos.Z&31)*32
		entries = append(entries, chunkEntry{index: idx, compressed: cbuf.Bytes()})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].index < entries[j].index })

	locations := make([]byte, sectorSize)
	timestamps := make([]byte, sectorSize)
	now := uint32(time.Now().Unix())

	// Each chunk: 4 bytes length + 1 byte compression type + compressed
	// data, padded to a sector boundary.
	var dataBuf bytes.Buffer
	currentSector := uint32(headerSectors)

	for _, e := range entries {
		payloadLen := uint32(len(e.compressed)) + 1 // +1 for compression byte
		totalLen := 4 + payloadLen
		sectorCount := (totalLen + sectorSize - 1) / sectorSize
		if sectorCount > 0xFF {
			return fmt.Errorf("chunk %d needs %d sectors", e.index, sectorCount)
		}

		off := e.index * 4
		binary.BigEndian.PutUint32(locations[off:off+4], (currentSector<<8)|sectorCount)
		binary.BigEndian.PutUint32(timestamps[off:off+4], now)

		var header [5]byte
		binary.BigEndian.PutUint32(header[0:4], payloadLen)
		header[4] = compressionZlib
		dataBuf.Write(header[:])
		dataBuf.Write(e.compressed)

		if pad := int(sectorCount)*sectorSize - int(totalLen); pad > 0 {
			dataBuf.Write(make([]byte, pad))
		}
		currentSector += sectorCount
	}

	path := RegionPath(dir, rx, rz)
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create temp region file: %w", err)
	}
	defer func() {
		f.Close()
		os.Remove(tmp)
	}()

	if _, err := f.Write(locations); err != nil {
		return fmt.Errorf("write locations: %w", err)
	}
	if _, err := f.Write(timestamps); err != nil {
		return fmt.Errorf("write timestamps: %w", err)
	}
	if _, err := f.Write(dataBuf.Bytes()); err != nil {
		return fmt.Errorf("write chunk data: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close region file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename region file: %w", err)
	}
	return nil
}

// ReadChunk returns the uncompressed NBT of chunk (cx, cz) from the region
// file at path, or nil when the chunk is absent.
func ReadChunk(path string, cx, cz int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var loc [4]byte
	if _, err := f.ReadAt(loc[:], int64((cx&31)+(cz&31)*32)*4); err != nil {
		return nil, fmt.Errorf("read location: %w", err)
	}
	entry := binary.BigEndian.Uint32(loc[:])
	if entry == 0 {
		return nil, nil
	}

	var header [5]byte
	base := int64(entry>>8) * sectorSize
	if _, err := f.ReadAt(header[:], base); err != nil {
		return nil, fmt.Errorf("read chunk header: %w", err)
	}
	if header[4] != compressionZlib {
		return nil, fmt.Errorf("unsupported compression %d", header[4])
	}
	payloadLen := binary.BigEndian.Uint32(header[0:4])
	if payloadLen < 1 {
		return nil, fmt.Errorf("chunk (%d,%d): empty payload", cx, cz)
	}
	compressed := make([]byte, payloadLen-1)
	if _, err := f.ReadAt(compressed, base+5); err != nil {
		return nil, fmt.Errorf("read chunk data: %w", err)
	}

	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("create zlib reader: %w", err)
	}
	defer zr.Close()
	return io.ReadAll(zr)
}

// Export writes every chunk of w to region files under dir and returns the
// number of region files written.
func Export(w *world.World, dir string) (int, error) {
	regions := make(map[gen.ChunkPos]map[gen.ChunkPos][]byte)
	for _, pos := range w.Chunks() {
		data, err := EncodeChunkNBT(w, pos.X, pos.Z)
		if err != nil {
			return 0, fmt.Errorf("encode chunk (%d,%d): %w", pos.X, pos.Z, err)
		}
		r := gen.ChunkPos{X: pos.X >> 5, Z: pos.Z >> 5}
		if regions[r] == nil {
			regions[r] = make(map[gen.ChunkPos][]byte)
		}
		regions[r][pos] = data
	}
	for r, chunks := range regions {
		if err := SaveRegion(dir, r.X, r.Z, chunks); err != nil {
			return 0, err
		}
	}
	return len(regions), nil
}
