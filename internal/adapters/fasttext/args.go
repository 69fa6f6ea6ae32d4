package fasttext

import "fmt"

const (
	fileMagic   int32 = 793712314
	fileVersion int32 = 12

	// upper bound on any single block read from a model file
	maxElems = 1 << 33
)

// LossName is the training loss, which decides how outputs are scored
type LossName int32

// Loss values as stored in the model header
const (
	LossHS      LossName = 1
	LossNS      LossName = 2
	LossSoftmax LossName = 3
	LossOVA     LossName = 4
)

func (l LossName) String() string {
	switch l {
	case LossHS:
		return "hs"
	case LossNS:
		return "ns"
	case LossSoftmax:
		return "softmax"
	case LossOVA:
		return "one-vs-all"
	default:
		return fmt.Sprintf("loss(%d)", int32(l))
	}
}

// ModelName is the training architecture; only supervised models classify
type ModelName int32

// Model values as stored in the model header
const (
	ModelCBOW       ModelName = 1
	ModelSkipgram   ModelName = 2
	ModelSupervised ModelName = 3
)

// Args are the hyperparameters saved with a model. Only the fields that
// affect inference are interpreted; the rest are kept for diagnostics
type Args struct {
	Dim          int32
	WS           int32
	Epoch        int32
	MinCount     int32
	Neg          int32
	WordNgrams   int32
	Loss         LossName
	Model        ModelName
	Bucket       int32
	Minn         int32
	Maxn         int32
	LRUpdateRate int32
	T            float64

	// Label is not stored in the file; fastText always uses the default
	Label string
}

func readHeader(b *binReader) (int32, error) {
	magic := b.i32()
	version := b.i32()
	if b.err != nil {
		return 0, b.err
	}
	if magic != fileMagic {
		return 0, fmt.Errorf("%w: bad magic %d", ErrFormat, magic)
	}
	if version > fileVersion {
		return 0, fmt.Errorf("%w: version %d is newer than %d", ErrFormat, version, fileVersion)
	}
	return version, nil
}

func readArgs(b *binReader) (Args, error) {
	a := Args{
		Dim:          b.i32(),
		WS:           b.i32(),
		Epoch:        b.i32(),
		MinCount:     b.i32(),
		Neg:          b.i32(),
		WordNgrams:   b.i32(),
		Loss:         LossName(b.i32()),
		Model:        ModelName(b.i32()),
		Bucket:       b.i32(),
		Minn:         b.i32(),
		Maxn:         b.i32(),
		LRUpdateRate: b.i32(),
		T:            b.f64(),
		Label:        "__label__",
	}
	if b.err != nil {
		return Args{}, b.err
	}
	if a.Dim <= 0 {
		return Args{}, fmt.Errorf("%w: dim %d", ErrFormat, a.Dim)
	}
	return a, nil
}
