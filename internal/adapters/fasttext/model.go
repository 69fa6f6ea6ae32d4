// Package fasttext reads supervised fastText models (.bin and quantized .ftz)
// and predicts labels with the same arithmetic as the fastText C++ library.
//
// Only inference is supported. A Model is immutable after loading and safe
// for concurrent Predict calls.
package fasttext

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

var (
	// ErrFormat marks a file that is not a readable fastText model
	ErrFormat = errors.New("fasttext: invalid model file")

	// ErrNotSupervised marks word vector models, which carry no labels
	ErrNotSupervised = errors.New("fasttext: model is not a supervised classifier")
)

// Model is a loaded classifier
type Model struct {
	args      Args
	version   int32
	dict      *dictionary
	input     matrix
	output    matrix
	loss      outputLoss
	quantized bool
}

// Open loads a model from disk
func Open(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	m, err := Read(bufio.NewReaderSize(f, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Read decodes a model from r
func Read(r io.Reader) (*Model, error) {
	b := newBinReader(r)

	version, err := readHeader(b)
	if err != nil {
		return nil, err
	}
	args, err := readArgs(b)
	if err != nil {
		return nil, err
	}
	if args.Model != ModelSupervised {
		return nil, ErrNotSupervised
	}
	// version 11 supervised models were trained without char n-grams
	if version == 11 {
		args.Maxn = 0
	}

	m := &Model{args: args, version: version}
	if m.dict, err = readDictionary(b, &m.args); err != nil {
		return nil, err
	}
	if m.dict.nlabels == 0 {
		return nil, fmt.Errorf("%w: no labels", ErrNotSupervised)
	}

	m.quantized = b.boolean()
	if b.err != nil {
		return nil, b.err
	}
	if m.input, err = readMatrix(b, m.quantized); err != nil {
		return nil, err
	}
	if !m.quantized && m.dict.pruned() {
		return nil, fmt.Errorf("%w: pruned dictionary with dense input", ErrFormat)
	}

	qout := b.boolean()
	if b.err != nil {
		return nil, b.err
	}
	if m.output, err = readMatrix(b, m.quantized && qout); err != nil {
		return nil, err
	}

	if err := m.check(); err != nil {
		return nil, err
	}

	switch args.Loss {
	case LossSoftmax:
		m.loss = softmaxLoss{wo: m.output}
	case LossOVA, LossNS:
		m.loss = binaryLoss{wo: m.output}
	case LossHS:
		m.loss = newHSLoss(m.output, m.dict.labelCounts())
	default:
		return nil, fmt.Errorf("%w: unknown loss %s", ErrFormat, args.Loss)
	}
	return m, nil
}

func readMatrix(b *binReader, quant bool) (matrix, error) {
	if quant {
		return readQuant(b)
	}
	return readDense(b)
}

func (m *Model) check() error {
	dim := int64(m.args.Dim)
	if m.input.cols() != dim || m.output.cols() != dim {
		return fmt.Errorf("%w: matrix width %d/%d, dim %d", ErrFormat, m.input.cols(), m.output.cols(), dim)
	}
	if want := int64(m.dict.nwords) + int64(m.bucketRows()); m.input.rows() < want {
		return fmt.Errorf("%w: input matrix has %d rows, need %d", ErrFormat, m.input.rows(), want)
	}
	nl := int64(m.dict.nlabels)
	want := nl
	if m.args.Loss == LossHS {
		want = nl - 1
	}
	if m.output.rows() < want {
		return fmt.Errorf("%w: output matrix has %d rows, need %d", ErrFormat, m.output.rows(), want)
	}
	return nil
}

// bucketRows is how many hashed rows follow the vocabulary in the input matrix
func (m *Model) bucketRows() int32 {
	if m.dict.pruneLen >= 0 {
		return int32(m.dict.pruneLen)
	}
	return m.args.Bucket
}

// Args returns the saved hyperparameters
func (m *Model) Args() Args { return m.args }

// Quantized reports whether the input matrix is product quantized
func (m *Model) Quantized() bool { return m.quantized }

// Labels returns every output label with its prefix, most frequent first
func (m *Model) Labels() []string {
	out := make([]string, m.dict.nlabels)
	for i := range out {
		out[i] = m.dict.label(int32(i))
	}
	return out
}

// Predict returns up to k labels and their probabilities, best first.
// k <= 0 means every label. Text is read as a single line
func (m *Model) Predict(text string, k int) ([]string, []float32, error) {
	return m.PredictThreshold(text, k, 0)
}

// PredictThreshold is Predict that drops labels scoring below threshold
func (m *Model) PredictThreshold(text string, k int, threshold float32) ([]string, []float32, error) {
	if k <= 0 || k > int(m.dict.nlabels) {
		k = int(m.dict.nlabels)
	}
	ids := m.dict.line(text)
	if len(ids) == 0 {
		return nil, nil, nil
	}

	hidden := make([]float32, m.args.Dim)
	for _, id := range ids {
		m.input.addRow(hidden, id)
	}
	inv := 1 / float32(len(ids))
	for i := range hidden {
		hidden[i] *= inv
	}

	best := m.loss.predict(k, threshold, hidden)
	labels := make([]string, len(best))
	probs := make([]float32, len(best))
	for i, s := range best {
		labels[i] = m.dict.label(s.idx)
		probs[i] = float32(math.Min(math.Exp(float64(s.score)), 1))
	}
	return labels, probs, nil
}
