package fasttext

import (
	"container/heap"
	"math"
	"sort"
)

const (
	sigmoidTableSize = 512
	maxSigmoid       = 8
)

// sigmoidTable matches the lookup fastText uses when scoring binary outputs
var sigmoidTable = func() []float32 {
	t := make([]float32, sigmoidTableSize+1)
	for i := range t {
		x := float64(i*2*maxSigmoid)/sigmoidTableSize - maxSigmoid
		t[i] = float32(1 / (1 + math.Exp(-x)))
	}
	return t
}()

func tableSigmoid(x float32) float32 {
	switch {
	case x < -maxSigmoid:
		return 0
	case x > maxSigmoid:
		return 1
	}
	i := int64((x + maxSigmoid) * sigmoidTableSize / maxSigmoid / 2)
	return sigmoidTable[i]
}

func stdLog(x float32) float32 { return float32(math.Log(float64(x) + 1e-5)) }

// scored is a log-probability for output index idx
type scored struct {
	score float32
	idx   int32
}

// kbest keeps the k highest scores in a min-heap
type kbest struct {
	k     int
	items []scored
}

func (h *kbest) Len() int { return len(h.items) }
func (h *kbest) Less(i, j int) bool {
	if h.items[i].score != h.items[j].score {
		return h.items[i].score < h.items[j].score
	}
	return h.items[i].idx > h.items[j].idx
}
func (h *kbest) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *kbest) Push(x any)    { h.items = append(h.items, x.(scored)) }
func (h *kbest) Pop() any {
	n := len(h.items)
	it := h.items[n-1]
	h.items = h.items[:n-1]
	return it
}

func (h *kbest) full() bool { return len(h.items) == h.k }

func (h *kbest) min() float32 { return h.items[0].score }

func (h *kbest) offer(s scored) {
	heap.Push(h, s)
	if len(h.items) > h.k {
		heap.Pop(h)
	}
}

// sorted returns the kept items best first; equal scores keep output order
func (h *kbest) sorted() []scored {
	out := append([]scored(nil), h.items...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].score != out[j].score {
			return out[i].score > out[j].score
		}
		return out[i].idx < out[j].idx
	})
	return out
}

// outputLoss scores the hidden vector against the output matrix
type outputLoss interface {
	predict(k int, threshold float32, hidden []float32) []scored
}

func findKBest(k int, threshold float32, output []float32) []scored {
	h := &kbest{k: k, items: make([]scored, 0, k+1)}
	for i, p := range output {
		if p < threshold {
			continue
		}
		ls := stdLog(p)
		if h.full() && ls < h.min() {
			continue
		}
		h.offer(scored{score: ls, idx: int32(i)})
	}
	return h.sorted()
}

type softmaxLoss struct{ wo matrix }

func (l softmaxLoss) predict(k int, threshold float32, hidden []float32) []scored {
	out := make([]float32, l.wo.rows())
	maxv := float32(math.Inf(-1))
	for i := range out {
		out[i] = l.wo.dotRow(hidden, int32(i))
		if out[i] > maxv {
			maxv = out[i]
		}
	}
	var z float32
	for i := range out {
		out[i] = float32(math.Exp(float64(out[i] - maxv)))
		z += out[i]
	}
	for i := range out {
		out[i] /= z
	}
	return findKBest(k, threshold, out)
}

// binaryLoss covers one-vs-all and negative sampling, which score each
// label independently
type binaryLoss struct{ wo matrix }

func (l binaryLoss) predict(k int, threshold float32, hidden []float32) []scored {
	out := make([]float32, l.wo.rows())
	for i := range out {
		out[i] = tableSigmoid(l.wo.dotRow(hidden, int32(i)))
	}
	return findKBest(k, threshold, out)
}

type node struct {
	parent, left, right int32
	count               int64
	binary              bool
}

// hsLoss walks a Huffman tree over label counts
type hsLoss struct {
	wo   matrix
	osz  int32
	tree []node
}

func newHSLoss(wo matrix, counts []int64) *hsLoss {
	osz := int32(len(counts))
	l := &hsLoss{wo: wo, osz: osz}
	if osz == 0 {
		return l
	}
	tree := make([]node, 2*osz-1)
	for i := range tree {
		tree[i] = node{parent: -1, left: -1, right: -1, count: 1e15}
	}
	for i := int32(0); i < osz; i++ {
		tree[i].count = counts[i]
	}
	leaf, nd := osz-1, osz
	for i := osz; i < 2*osz-1; i++ {
		var mini [2]int32
		for j := range mini {
			if leaf >= 0 && tree[leaf].count < tree[nd].count {
				mini[j] = leaf
				leaf--
			} else {
				mini[j] = nd
				nd++
			}
		}
		tree[i].left, tree[i].right = mini[0], mini[1]
		tree[i].count = tree[mini[0]].count + tree[mini[1]].count
		tree[mini[0]].parent = i
		tree[mini[1]].parent = i
		tree[mini[1]].binary = true
	}
	l.tree = tree
	return l
}

func (l *hsLoss) predict(k int, threshold float32, hidden []float32) []scored {
	if l.osz == 0 {
		return nil
	}
	h := &kbest{k: k, items: make([]scored, 0, k+1)}
	l.dfs(h, stdLog(threshold), 2*l.osz-2, 0, hidden)
	return h.sorted()
}

func (l *hsLoss) dfs(h *kbest, floor float32, n int32, score float32, hidden []float32) {
	if score < floor {
		return
	}
	if h.full() && score < h.min() {
		return
	}
	nd := l.tree[n]
	if nd.left == -1 && nd.right == -1 {
		h.offer(scored{score: score, idx: n})
		return
	}
	f := l.wo.dotRow(hidden, n-l.osz)
	f = float32(1 / (1 + math.Exp(-float64(f))))
	l.dfs(h, floor, nd.left, score+stdLog(1-f), hidden)
	l.dfs(h, floor, nd.right, score+stdLog(f), hidden)
}
