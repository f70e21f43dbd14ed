package dicecore

import (
	"strconv"
	"strings"
)

// Parser turns expression text into a Node tree via precedence-climbing
// recursive descent. The precedence levels, loosest to tightest, are:
// comma/add/subtract, multiply, counting (#/#s/#f/#cs/#cf), drop/keep/
// clamp/sort, reroll, explode/compound/penetrate, dice.
type Parser struct {
	s *scanner
}

// Parse compiles expr into a Node tree ready for Evaluator.Eval.
func Parse(expr string) (Node, error) {
	p := &Parser{s: newScanner(expr)}
	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.s.eof() {
		return nil, NewFormatError("unexpected trailing input", expr, p.s.position())
	}
	if root == nil {
		return emptyValueNode, nil
	}
	return root, nil
}

func (p *Parser) parseComparator() (CompareOp, bool) {
	if lit, ok := p.s.tryAnyFold(comparatorSymbols...); ok {
		return LookupCompareOp(lit), true
	}
	return EQL, false
}

func (p *Parser) parseOptionalInt() Node {
	if n, ok := p.s.consumeInt(); ok {
		return &valueNode{text: strconv.Itoa(n), value: n}
	}
	return nil
}

// parseAtom is the grammar's `atom := int | '(' expr ')' | ε` production.
// It returns a nil Node for ε; callers decide what absence means for them.
func (p *Parser) parseAtom() (Node, error) {
	if p.s.tryLit("(") {
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if !p.s.tryLit(")") {
			return nil, NewFormatError("unterminated parenthesis, expected )", p.s.src, p.s.position())
		}
		return &groupNode{inner: inner}, nil
	}
	if n, ok := p.s.consumeInt(); ok {
		return &valueNode{text: strconv.Itoa(n), value: n}, nil
	}
	return nil, nil
}

// parseDice implements `dice := atom ('d' diceRhs | 'D66' | 'd%')?`. D66 is
// checked case-sensitively before the generic, case-insensitive 'd'
// production so "D66" composes two d6 while "d66"/"D20" fall through to the
// ordinary polyhedral path.
func (p *Parser) parseDice() (Node, error) {
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	pos := p.s.position()

	if p.s.tryLit("D66") {
		return &diceNode{kind: diceD66, left: left, pos: pos}, nil
	}
	if !p.s.tryLitFold("d") {
		if left == nil {
			return emptyValueNode, nil
		}
		return left, nil
	}

	if p.s.tryLit("%") {
		return &diceNode{kind: dicePercent, left: left, pos: pos}, nil
	}
	if p.s.tryLitFold("F") {
		return &diceNode{kind: diceFudge, left: left, pos: pos}, nil
	}
	if vals, ok, err := p.s.consumeBracketList(); err != nil {
		return nil, err
	} else if ok {
		return &diceNode{kind: diceCsv, left: left, vals: vals, pos: pos}, nil
	}
	if p.s.tryLit("(") {
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if !p.s.tryLit(")") {
			return nil, NewFormatError("unterminated parenthesized die size", p.s.src, p.s.position())
		}
		return &diceNode{kind: diceStd, left: left, right: &groupNode{inner: inner}, pos: pos}, nil
	}
	if n, ok := p.s.consumeInt(); ok {
		return &diceNode{kind: diceStd, left: left, right: &valueNode{text: strconv.Itoa(n), value: n}, pos: pos}, nil
	}
	return nil, NewFormatError("expected a die size after 'd'", p.s.src, p.s.position())
}

// explodeTokens is tried longest-first so "!!o" and "!!" are recognized
// before the bare "!", and "!o" before "!".
var explodeTokens = []string{"!!o", "!!", "!o", "!", "p"}

func (p *Parser) parseExplode() (Node, error) {
	left, err := p.parseDice()
	if err != nil {
		return nil, err
	}
	for {
		pos := p.s.position()
		sym, ok := p.s.tryAnyFold(explodeTokens...)
		if !ok {
			break
		}
		if sym == "p" {
			penSize := p.parseOptionalInt()
			left = &explodeFamilyNode{left: left, mode: modePenetrate, penSize: penSize, pos: pos}
			continue
		}
		mode, once := modeExplode, false
		switch sym {
		case "!!o":
			mode, once = modeCompound, true
		case "!!":
			mode = modeCompound
		case "!o":
			once = true
		}
		cmp, hasCmp := p.parseComparator()
		target := p.parseOptionalInt()
		left = &explodeFamilyNode{left: left, mode: mode, once: once, hasCmp: hasCmp, cmp: cmp, target: target, pos: pos}
	}
	return left, nil
}

func (p *Parser) parseReroll() (Node, error) {
	left, err := p.parseExplode()
	if err != nil {
		return nil, err
	}
	for {
		pos := p.s.position()
		sym, ok := p.s.tryAnyFold("ro", "r")
		if !ok {
			break
		}
		cmp, hasCmp := p.parseComparator()
		target := p.parseOptionalInt()
		left = &rerollNode{left: left, once: sym == "ro", hasCmp: hasCmp, cmp: cmp, target: target, pos: pos}
	}
	return left, nil
}

// dropCompareTokens is tried longest-first: "-<=" before "-<", etc.
var dropCompareTokens = []string{"-<=", "->=", "-<", "->", "-="}

func (p *Parser) parseDrop() (Node, error) {
	left, err := p.parseReroll()
	if err != nil {
		return nil, err
	}
	for {
		pos := p.s.position()
		if sym, ok := p.s.tryAnyFold(dropCompareTokens...); ok {
			rhs := p.parseOptionalInt()
			left = &dropCompareNode{left: left, symbol: sym, rhs: rhs, pos: pos}
			continue
		}
		if sym, ok := p.s.tryAnyFold("kh", "kl", "k", "-h", "-l"); ok {
			rhs := p.parseOptionalInt()
			left = &dropHighLowNode{left: left, method: strings.ToLower(sym), rhs: rhs, pos: pos}
			continue
		}
		if p.s.tryLitFold("C>") {
			rhs := p.parseOptionalInt()
			left = &clampNode{left: left, ceiling: true, rhs: rhs, pos: pos}
			continue
		}
		if p.s.tryLitFold("C<") {
			rhs := p.parseOptionalInt()
			left = &clampNode{left: left, ceiling: false, rhs: rhs, pos: pos}
			continue
		}
		if p.s.tryLitFold("sd") {
			left = &sortNode{left: left, descending: true}
			continue
		}
		if p.s.tryLitFold("s") {
			left = &sortNode{left: left, descending: false}
			continue
		}
		break
	}
	return left, nil
}

// countTokens is tried longest-first so "#cs"/"#cf" win over "#s"/"#f",
// which in turn win over the bare "#".
var countTokens = []struct {
	sym  string
	kind countKind
}{
	{"#cs", countCritSuccess},
	{"#cf", countCritFailure},
	{"#s", countSuccess},
	{"#f", countFailure},
	{"#", countPlain},
}

func (p *Parser) parseCount() (Node, error) {
	left, err := p.parseDrop()
	if err != nil {
		return nil, err
	}
	for {
		pos := p.s.position()
		matched := false
		for _, tk := range countTokens {
			if !p.s.tryLitFold(tk.sym) {
				continue
			}
			cmp, hasCmp := p.parseComparator()
			target := p.parseOptionalInt()
			left = &countNode{left: left, kind: tk.kind, hasCmp: hasCmp, cmp: cmp, target: target, pos: pos}
			matched = true
			break
		}
		if !matched {
			break
		}
	}
	return left, nil
}

func (p *Parser) parseTerm() (Node, error) {
	left, err := p.parseCount()
	if err != nil {
		return nil, err
	}
	for p.s.tryLit("*") {
		right, err := p.parseCount()
		if err != nil {
			return nil, err
		}
		left = &binaryNode{op: '*', left: left, right: right}
	}
	return left, nil
}

func (p *Parser) parseExpr() (Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.s.tryLit("+"):
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			left = &binaryNode{op: '+', left: left, right: right}
		case p.s.tryLit("-"):
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			left = &binaryNode{op: '-', left: left, right: right}
		case p.s.tryLit(","):
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			left = &binaryNode{op: ',', left: left, right: right}
		default:
			return left, nil
		}
	}
}
