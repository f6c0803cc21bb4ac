package prepass

import "github.com/mokiat/gblob"

// UniformSize is the size of the encoded selection block. Five u32
// fields take 20 bytes; the rest is padding up to a 16 byte multiple.
const UniformSize = 32

const (
	offsetShowDepth         = 0
	offsetShowNormals       = 4
	offsetShowMotionVectors = 8
	offsetShowDeferredData  = 12
	offsetPrepassView       = 16
)

// Uniform encodes the selection into dst, reusing its capacity when
// possible, and returns the UniformSize long block.
//
// Layout (little endian):
//
//	struct ShowPrepassSettings {
//	    show_depth: u32,
//	    show_normals: u32,
//	    show_motion_vectors: u32,
//	    show_deferred_data: u32,
//	    prepass_view: u32,
//	}
func (s Selection) Uniform(dst []byte) []byte {
	if cap(dst) < UniformSize {
		dst = make([]byte, UniformSize)
	}
	dst = dst[:UniformSize]
	clear(dst)

	block := gblob.LittleEndianBlock(dst)
	block.SetUint32(offsetShowDepth, flag(s.ShowDepth))
	block.SetUint32(offsetShowNormals, flag(s.ShowNormals))
	block.SetUint32(offsetShowMotionVectors, flag(s.ShowMotionVectors))
	block.SetUint32(offsetShowDeferredData, flag(s.ShowDeferredData))
	block.SetUint32(offsetPrepassView, s.PrepassView)
	return dst
}

func flag(value bool) uint32 {
	if value {
		return 1
	}
	return 0
}
