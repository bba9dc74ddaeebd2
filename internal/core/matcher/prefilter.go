package matcher

// Aho-Corasick automaton over the target word list. It answers "which words occur
// anywhere as a substring" so the scan loop can skip words that cannot match.
// Fixed 256-way transition table per node

type acNode struct {
	// trans[b] = next state or -1 if absent
	trans  [256]int
	fail   int
	output []int // word indexes ending at this node
}

// Prefilter is an immutable substring index over a word list. Safe for concurrent use
// once built
type Prefilter struct {
	nodes []acNode
	n     int
}

// NewPrefilter builds the automaton for words; empty words are ignored
func NewPrefilter(words []string) *Prefilter {
	p := &Prefilter{nodes: make([]acNode, 1), n: len(words)}
	for i := range p.nodes[0].trans {
		p.nodes[0].trans[i] = -1
	}
	for i, w := range words {
		p.add([]byte(w), i)
	}
	p.build()
	return p
}

// add inserts a pattern and associates it with its word index
func (p *Prefilter) add(pat []byte, id int) {
	if len(pat) == 0 {
		return
	}
	state := 0
	for _, b := range pat {
		nxt := p.nodes[state].trans[b]
		if nxt == -1 {
			nxt = len(p.nodes)
			p.nodes[state].trans[b] = nxt
			var n acNode
			for i := range n.trans {
				n.trans[i] = -1
			}
			p.nodes = append(p.nodes, n)
		}
		state = nxt
	}
	p.nodes[state].output = append(p.nodes[state].output, id)
}

// build finalizes failure links breadth first
func (p *Prefilter) build() {
	q := make([]int, 0, 64)
	for b := 0; b < 256; b++ {
		s := p.nodes[0].trans[b]
		if s != -1 {
			p.nodes[s].fail = 0
			q = append(q, s)
		}
	}

	for qi := 0; qi < len(q); qi++ {
		r := q[qi]
		for b := 0; b < 256; b++ {
			s := p.nodes[r].trans[b]
			if s == -1 {
				continue
			}
			q = append(q, s)

			f := p.nodes[r].fail
			for f != 0 && p.nodes[f].trans[b] == -1 {
				f = p.nodes[f].fail
			}
			if nxt := p.nodes[f].trans[b]; nxt != -1 && nxt != s {
				p.nodes[s].fail = nxt
			} else {
				p.nodes[s].fail = 0
			}

			p.nodes[s].output = append(p.nodes[s].output, p.nodes[p.nodes[s].fail].output...)
		}
	}
}

// Present marks, per word index, whether that word occurs in text as a substring.
// A false entry guarantees FindAndConsume(text, word) finds nothing
func (p *Prefilter) Present(text string) []bool {
	out := make([]bool, p.n)
	if p.n == 0 || text == "" {
		return out
	}
	state := 0
	for i := 0; i < len(text); i++ {
		b := text[i]
		for state != 0 && p.nodes[state].trans[b] == -1 {
			state = p.nodes[state].fail
		}
		if nxt := p.nodes[state].trans[b]; nxt != -1 {
			state = nxt
		}
		for _, id := range p.nodes[state].output {
			out[id] = true
		}
	}
	return out
}
