package symbols

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/NastyaGoryachaya/forex-converter/internal/consts"
	errs "github.com/NastyaGoryachaya/forex-converter/internal/errors"
)

//go:embed symbols.json
var bundled []byte

var ErrNoCurrencies = errors.New("document has no currencies object")

// Table — неизменяемая таблица "код валюты -> символ". После загрузки только чтение.
type Table struct {
	symbols map[string]string
}

// document — формат файла с символами: {"currencies": {"USD": "$"}}
type document struct {
	Currencies map[string]string `json:"currencies"`
}

// Load — загружает таблицу из файла path, а если путь пустой — из встроенного symbols.json.
func Load(path string) (*Table, error) {
	if path == "" {
		return Parse(bundled)
	}
	return LoadFile(path)
}

// LoadFile — загрузка таблицы из файла на диске.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open symbols file %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read symbols file %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("symbols file %s: %w", path, err)
	}
	return t, nil
}

// Parse — разбирает JSON-документ с объектом currencies.
func Parse(data []byte) (*Table, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding symbols: %w", err)
	}
	if doc.Currencies == nil {
		return nil, ErrNoCurrencies
	}

	symbols := make(map[string]string, len(doc.Currencies))
	for code, sym := range doc.Currencies {
		symbols[consts.NormalizeCode(code)] = sym
	}
	return &Table{symbols: symbols}, nil
}

// Lookup — символ валюты и признак того, что код есть в таблице.
func (t *Table) Lookup(code string) (string, bool) {
	sym, ok := t.symbols[consts.NormalizeCode(code)]
	return sym, ok
}

// Symbol — как Lookup, но отсутствие кода возвращается как errs.ErrSymbolNotFound.
func (t *Table) Symbol(code string) (string, error) {
	sym, ok := t.Lookup(code)
	if !ok {
		return "", fmt.Errorf("%w: %q", errs.ErrSymbolNotFound, code)
	}
	return sym, nil
}

// Resolve — символ валюты или заглушка consts.UnknownSymbol.
func (t *Table) Resolve(code string) string {
	sym, err := t.Symbol(code)
	if err != nil {
		return consts.UnknownSymbol
	}
	return sym
}

func (t *Table) Len() int {
	return len(t.symbols)
}
