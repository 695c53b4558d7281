package inline

// defaultFootnoteSymbols is the auto-symbol sequence, as HTML entity names.
var defaultFootnoteSymbols = [...]string{
	"asterisk", "dagger", "Dagger", "sect", "para",
	"numbersign", "spades", "hearts", "diams", "clubs",
}

// footnotes numbers [#]_ references and hands out symbols for [*]_
// references. Each render gets its own.
type footnotes struct {
	index   int
	symbols []string
}

func newFootnotes() *footnotes {
	f := &footnotes{}
	f.reset()
	return f
}

// reset rewinds the counter and refills the symbol queue with a private copy
// of the defaults.
func (f *footnotes) reset() {
	f.index = 0
	f.symbols = make([]string, len(defaultFootnoteSymbols))
	copy(f.symbols, defaultFootnoteSymbols[:])
}

// nextNumber returns 1 on the first call, then 2, 3, ...
func (f *footnotes) nextNumber() int {
	f.index++
	return f.index
}

// nextSymbol pops the next symbol name. The queue is not refilled.
func (f *footnotes) nextSymbol() (string, error) {
	if len(f.symbols) == 0 {
		return "", &RenderError{Err: ErrFootnoteSymbolsExhausted, Subject: "*"}
	}
	name := f.symbols[0]
	f.symbols = f.symbols[1:]
	return name, nil
}

// symbolEntity returns the HTML entity for a symbol name.
func symbolEntity(name string) string {
	return "&" + name + ";"
}
