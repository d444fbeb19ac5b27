// core/bpe/learner.go
package bpe

// Config holds learning parameters.
type Config struct {
	MaxMerges int // upper bound on learned rules; learning stops early when no pair repeats
}

// Learner discovers merge rules from a corpus of raw sequences.
type Learner struct {
	cfg Config
}

// NewLearner validates the config and returns a Learner.
func NewLearner(c Config) (*Learner, error) {
	if c.MaxMerges < 0 {
		return nil, ErrInvalidMergeBudget
	}
	return &Learner{cfg: c}, nil
}

// Result is the outcome of one Learn call.
type Result struct {
	Rules []Rule
	Vocab *Vocab
	// Tokens is the learner's final corpus state, index-aligned with the
	// input sequences (nil for empty inputs). Encoding any input with Rules
	// reproduces the corresponding entry exactly.
	Tokens [][]string
}

// Learn runs up to MaxMerges rounds of pair counting and replacement over
// seqs. Each round counts every adjacent symbol pair across the corpus,
// picks the most frequent one (ties broken by earliest first occurrence in
// corpus order), and replaces it everywhere before the next round. Stops
// early once no pair occurs more than once.
func (l *Learner) Learn(seqs []string) Result {
	corpus := make([][]string, len(seqs))
	for i, s := range seqs {
		corpus[i] = initSymbols(s)
	}

	var rules []Rule
	for len(rules) < l.cfg.MaxMerges {
		best, ok := bestPair(corpus)
		if !ok {
			break
		}
		rules = append(rules, best)
		for i := range corpus {
			corpus[i] = mergePair(corpus[i], best)
		}
	}
	return Result{Rules: rules, Vocab: buildVocab(corpus), Tokens: corpus}
}

type pairStat struct {
	count int
	first int // global scan position of the first occurrence
}

// bestPair scans all adjacent pairs in the corpus and returns the most
// frequent one. ok is false when the best frequency is <= 1 (the early-stop
// condition) or the corpus has no pairs at all.
func bestPair(corpus [][]string) (Rule, bool) {
	stats := make(map[Rule]*pairStat)
	pos := 0
	for _, toks := range corpus {
		for i := 0; i+1 < len(toks); i++ {
			r := Rule{Left: toks[i], Right: toks[i+1]}
			s := stats[r]
			if s == nil {
				s = &pairStat{first: pos}
				stats[r] = s
			}
			s.count++
			pos++
		}
	}

	var (
		best  Rule
		bs    pairStat
		found bool
	)
	for r, s := range stats {
		if !found || s.count > bs.count || (s.count == bs.count && s.first < bs.first) {
			best, bs, found = r, *s, true
		}
	}
	if !found || bs.count <= 1 {
		return Rule{}, false
	}
	return best, true
}
