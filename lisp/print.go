package lisp

import (
	"bytes"
	"strconv"
	"strings"
)

var stringEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
)

func quoteString(s string) string {
	return `"` + stringEscaper.Replace(s) + `"`
}

// Print returns the printed representation of v.  When readable is true
// strings are quoted and escaped so the text can be read back; otherwise
// strings are written raw.  An atom reached again while printing its own
// contents is written as (atom ...).
func Print(v Value, readable bool) string {
	p := &printer{readable: readable}
	p.print(v)
	return p.buf.String()
}

// PrintJoin prints each of vals and joins the results with sep.
func PrintJoin(vals []Value, readable bool, sep string) string {
	p := &printer{readable: readable}
	p.join(vals, sep)
	return p.buf.String()
}

type printer struct {
	buf      bytes.Buffer
	readable bool
	open     map[*Atom]bool // atoms whose contents are being printed
}

func (p *printer) print(v Value) {
	switch v.Type {
	case LInt:
		p.buf.WriteString(strconv.FormatInt(v.Int, 10))
	case LString:
		if p.readable {
			p.buf.WriteString(quoteString(v.Str))
		} else {
			p.buf.WriteString(v.Str)
		}
	case LSymbol:
		p.buf.WriteString(v.Str)
	case LKeyword:
		p.buf.WriteString(":" + v.Str)
	case LBool:
		p.buf.WriteString(strconv.FormatBool(v.Bool))
	case LNil:
		p.buf.WriteString("nil")
	case LList:
		p.seq(v.Cells, "(", ")")
	case LVector:
		p.seq(v.Cells, "[", "]")
	case LHashMap:
		p.hashMap(v.Map)
	case LFun:
		p.buf.WriteString("(fn ...)")
	case LAtom:
		p.atom(v.Atom)
	default:
		p.buf.WriteString("#<invalid>")
	}
}

func (p *printer) atom(a *Atom) {
	if p.open[a] {
		p.buf.WriteString("(atom ...)")
		return
	}
	if p.open == nil {
		p.open = make(map[*Atom]bool)
	}
	p.open[a] = true
	p.buf.WriteString("(atom ")
	p.print(a.Val)
	p.buf.WriteString(")")
	delete(p.open, a)
}

func (p *printer) join(vals []Value, sep string) {
	for i := range vals {
		if i > 0 {
			p.buf.WriteString(sep)
		}
		p.print(vals[i])
	}
}

func (p *printer) seq(cells []Value, left, right string) {
	p.buf.WriteString(left)
	p.join(cells, " ")
	p.buf.WriteString(right)
}

func (p *printer) hashMap(m *HashMap) {
	p.buf.WriteString("{")
	i := 0
	m.Each(func(k HashableValue, v Value) {
		if i > 0 {
			p.buf.WriteString(" ")
		}
		i++
		p.print(k.Value())
		p.buf.WriteString(" ")
		p.print(v)
	})
	p.buf.WriteString("}")
}
