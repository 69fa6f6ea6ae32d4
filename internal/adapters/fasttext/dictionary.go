package fasttext

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	eos = "</s>"
	bow = "<"
	eow = ">"

	entryWord  = 0
	entryLabel = 1
)

type entry struct {
	word     string
	count    int64
	kind     int8
	subwords []int32
}

type dictionary struct {
	args     *Args
	words    []entry
	ids      map[string]int32
	nwords   int32
	nlabels  int32
	ntokens  int64
	pruneLen int64
	pruneIdx map[int32]int32
}

func readDictionary(b *binReader, args *Args) (*dictionary, error) {
	d := &dictionary{args: args}
	size := b.i32()
	d.nwords = b.i32()
	d.nlabels = b.i32()
	d.ntokens = b.i64()
	d.pruneLen = b.i64()
	if b.err != nil {
		return nil, b.err
	}
	if size < 0 || d.nwords < 0 || d.nlabels < 0 || d.nwords+d.nlabels != size {
		return nil, fmt.Errorf("%w: dictionary size %d words %d labels %d", ErrFormat, size, d.nwords, d.nlabels)
	}

	d.words = make([]entry, size)
	d.ids = make(map[string]int32, size)
	for i := range d.words {
		e := &d.words[i]
		e.word = b.cstring()
		e.count = b.i64()
		e.kind = int8(b.u8())
		if b.err != nil {
			return nil, b.err
		}
		d.ids[e.word] = int32(i)
	}

	if d.pruneLen > 0 {
		d.pruneIdx = make(map[int32]int32, d.pruneLen)
		for i := int64(0); i < d.pruneLen; i++ {
			k, v := b.i32(), b.i32()
			if v < 0 || int64(v) >= d.pruneLen {
				return nil, fmt.Errorf("%w: prune index %d -> %d out of range", ErrFormat, k, v)
			}
			d.pruneIdx[k] = v
		}
		if b.err != nil {
			return nil, b.err
		}
	}

	for i := range d.words {
		e := &d.words[i]
		e.subwords = []int32{int32(i)}
		if e.word != eos {
			e.subwords = d.computeSubwords(bow+e.word+eow, e.subwords)
		}
	}
	return d, nil
}

func (d *dictionary) pruned() bool { return d.pruneLen >= 0 }

// label returns the i-th output label
func (d *dictionary) label(i int32) string { return d.words[d.nwords+i].word }

func (d *dictionary) labelCounts() []int64 {
	out := make([]int64, d.nlabels)
	for i := range out {
		out[i] = d.words[d.nwords+int32(i)].count
	}
	return out
}

// hash is 32 bit FNV-1a over bytes taken as signed chars
func hash(s string) uint32 {
	h := uint32(2166136261)
	for i := 0; i < len(s); i++ {
		h ^= uint32(int8(s[i]))
		h *= 16777619
	}
	return h
}

func (d *dictionary) pushHash(out []int32, id int32) []int32 {
	if d.pruneLen == 0 || id < 0 {
		return out
	}
	if d.pruneLen > 0 {
		mapped, ok := d.pruneIdx[id]
		if !ok {
			return out
		}
		id = mapped
	}
	return append(out, d.nwords+id)
}

// computeSubwords appends the bucketed character n-grams of a wrapped word.
// N-grams are counted in code points; single-rune n-grams at the word edges
// are the boundary markers alone and are skipped
func (d *dictionary) computeSubwords(word string, out []int32) []int32 {
	if d.args.Bucket <= 0 || d.args.Maxn <= 0 {
		return out
	}
	for i := 0; i < len(word); i++ {
		if !utf8.RuneStart(word[i]) {
			continue
		}
		j := i
		for n := int32(1); j < len(word) && n <= d.args.Maxn; n++ {
			j++
			for j < len(word) && !utf8.RuneStart(word[j]) {
				j++
			}
			if n >= d.args.Minn && !(n == 1 && (i == 0 || j == len(word))) {
				h := int32(hash(word[i:j]) % uint32(d.args.Bucket))
				out = d.pushHash(out, h)
			}
		}
	}
	return out
}

func (d *dictionary) isLabel(token string) bool {
	return strings.HasPrefix(token, d.args.Label)
}

func (d *dictionary) addSubwords(out []int32, token string, wid int32) []int32 {
	if wid < 0 {
		if token != eos {
			out = d.computeSubwords(bow+token+eow, out)
		}
		return out
	}
	if d.args.Maxn <= 0 {
		return append(out, wid)
	}
	return append(out, d.words[wid].subwords...)
}

func (d *dictionary) addWordNgrams(out []int32, hashes []int32, n int32) []int32 {
	if d.args.Bucket <= 0 {
		return out
	}
	bucket := uint64(d.args.Bucket)
	for i := range hashes {
		h := uint64(int64(hashes[i]))
		for j := i + 1; j < len(hashes) && j < i+int(n); j++ {
			h = h*116049371 + uint64(int64(hashes[j]))
			out = d.pushHash(out, int32(h%bucket))
		}
	}
	return out
}

// line turns text into input row ids the way fastText reads one line:
// whitespace separated tokens followed by the end of sentence marker.
// Anything after the first newline belongs to the next line and is ignored.
// Tokens that look like labels are dropped
func (d *dictionary) line(text string) []int32 {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	tokens := append(strings.FieldsFunc(text, isSpace), eos)
	out := make([]int32, 0, len(tokens)*4)
	hashes := make([]int32, 0, len(tokens))
	for _, tok := range tokens {
		h := hash(tok)
		wid, ok := d.ids[tok]
		if !ok {
			wid = -1
		}
		kind := int8(entryWord)
		if ok {
			kind = d.words[wid].kind
		} else if d.isLabel(tok) {
			kind = entryLabel
		}
		if kind == entryWord {
			out = d.addSubwords(out, tok, wid)
			hashes = append(hashes, int32(h))
		}
	}
	return d.addWordNgrams(out, hashes, d.args.WordNgrams)
}

// isSpace matches the fastText reader's token delimiters
func isSpace(r rune) bool {
	switch r {
	case ' ', '\n', '\r', '\t', '\v', '\f', 0:
		return true
	}
	return false
}
