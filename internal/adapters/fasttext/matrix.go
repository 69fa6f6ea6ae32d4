package fasttext

import "fmt"

// matrix is the read side shared by dense and product-quantized weights
type matrix interface {
	rows() int64
	cols() int64
	// addRow adds row i scaled by 1 into x
	addRow(x []float32, i int32)
	// dotRow returns <x, row i>
	dotRow(x []float32, i int32) float32
}

type denseMatrix struct {
	m, n int64
	data []float32
}

func readDense(b *binReader) (*denseMatrix, error) {
	m, n := b.i64(), b.i64()
	if b.err != nil {
		return nil, b.err
	}
	if m < 0 || n < 0 || (n > 0 && m > maxElems/4/n) {
		return nil, fmt.Errorf("%w: dense matrix %dx%d", ErrFormat, m, n)
	}
	data := b.f32s(m * n)
	if b.err != nil {
		return nil, b.err
	}
	return &denseMatrix{m: m, n: n, data: data}, nil
}

func (d *denseMatrix) rows() int64 { return d.m }
func (d *denseMatrix) cols() int64 { return d.n }

func (d *denseMatrix) addRow(x []float32, i int32) {
	row := d.data[int64(i)*d.n : int64(i+1)*d.n]
	for j, v := range row {
		x[j] += v
	}
}

func (d *denseMatrix) dotRow(x []float32, i int32) float32 {
	row := d.data[int64(i)*d.n : int64(i+1)*d.n]
	var s float32
	for j, v := range row {
		s += x[j] * v
	}
	return s
}

const ksub = 256

// productQuantizer splits a vector into nsubq chunks of dsub floats (the
// last chunk has lastdsub) and stores each chunk as one of 256 centroids
type productQuantizer struct {
	dim, nsubq, dsub, lastdsub int32
	centroids                  []float32
}

func readPQ(b *binReader) (*productQuantizer, error) {
	pq := &productQuantizer{
		dim:      b.i32(),
		nsubq:    b.i32(),
		dsub:     b.i32(),
		lastdsub: b.i32(),
	}
	if b.err != nil {
		return nil, b.err
	}
	if pq.dim <= 0 || pq.nsubq <= 0 || pq.dsub <= 0 || pq.lastdsub <= 0 ||
		pq.dsub*(pq.nsubq-1)+pq.lastdsub != pq.dim {
		return nil, fmt.Errorf("%w: quantizer dim %d nsubq %d dsub %d lastdsub %d",
			ErrFormat, pq.dim, pq.nsubq, pq.dsub, pq.lastdsub)
	}
	pq.centroids = b.f32s(int64(pq.dim) * ksub)
	if b.err != nil {
		return nil, b.err
	}
	return pq, nil
}

func (pq *productQuantizer) centroid(m int32, i uint8) []float32 {
	if m == pq.nsubq-1 {
		off := int64(m)*ksub*int64(pq.dsub) + int64(i)*int64(pq.lastdsub)
		return pq.centroids[off : off+int64(pq.lastdsub)]
	}
	off := (int64(m)*ksub + int64(i)) * int64(pq.dsub)
	return pq.centroids[off : off+int64(pq.dsub)]
}

func (pq *productQuantizer) addCode(x []float32, code []uint8, alpha float32) {
	for m := int32(0); m < pq.nsubq; m++ {
		base := m * pq.dsub
		for n, c := range pq.centroid(m, code[m]) {
			x[base+int32(n)] += alpha * c
		}
	}
}

func (pq *productQuantizer) mulCode(x []float32, code []uint8, alpha float32) float32 {
	var s float32
	for m := int32(0); m < pq.nsubq; m++ {
		base := m * pq.dsub
		for n, c := range pq.centroid(m, code[m]) {
			s += x[base+int32(n)] * c
		}
	}
	return s * alpha
}

// quantMatrix stores rows as product quantizer codes, optionally with a
// separately quantized per-row norm
type quantMatrix struct {
	m, n      int64
	qnorm     bool
	codes     []uint8
	pq        *productQuantizer
	normCodes []uint8
	npq       *productQuantizer
}

func readQuant(b *binReader) (*quantMatrix, error) {
	q := &quantMatrix{}
	q.qnorm = b.boolean()
	q.m = b.i64()
	q.n = b.i64()
	codesize := b.i32()
	if b.err != nil {
		return nil, b.err
	}
	if q.m < 0 || q.n <= 0 || codesize < 0 {
		return nil, fmt.Errorf("%w: quantized matrix %dx%d codes %d", ErrFormat, q.m, q.n, codesize)
	}
	q.codes = b.bytes(int64(codesize))
	if b.err != nil {
		return nil, b.err
	}

	var err error
	if q.pq, err = readPQ(b); err != nil {
		return nil, err
	}
	if int64(q.pq.dim) != q.n || int64(codesize) != q.m*int64(q.pq.nsubq) {
		return nil, fmt.Errorf("%w: quantized matrix %dx%d does not match quantizer dim %d nsubq %d codes %d",
			ErrFormat, q.m, q.n, q.pq.dim, q.pq.nsubq, codesize)
	}

	if q.qnorm {
		q.normCodes = b.bytes(q.m)
		if b.err != nil {
			return nil, b.err
		}
		if q.npq, err = readPQ(b); err != nil {
			return nil, err
		}
	}
	return q, nil
}

func (q *quantMatrix) rows() int64 { return q.m }
func (q *quantMatrix) cols() int64 { return q.n }

func (q *quantMatrix) norm(i int32) float32 {
	if !q.qnorm {
		return 1
	}
	return q.npq.centroid(0, q.normCodes[i])[0]
}

func (q *quantMatrix) code(i int32) []uint8 {
	off := int64(i) * int64(q.pq.nsubq)
	return q.codes[off : off+int64(q.pq.nsubq)]
}

func (q *quantMatrix) addRow(x []float32, i int32) {
	q.pq.addCode(x, q.code(i), q.norm(i))
}

func (q *quantMatrix) dotRow(x []float32, i int32) float32 {
	return q.pq.mulCode(x, q.code(i), q.norm(i))
}
