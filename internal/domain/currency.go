package domain

import "sort"

// Currencies — ответ провайдера на /list: код -> название валюты
type Currencies map[string]string

// Codes — отсортированный список кодов.
func (c Currencies) Codes() []string {
	out := make([]string, 0, len(c))
	for code := range c {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// KnownSet — множество кодов, допустимых для текущей сессии.
type KnownSet map[string]struct{}

// NewKnownSet строит множество из списка кодов.
func NewKnownSet(codes []string) KnownSet {
	set := make(KnownSet, len(codes))
	for _, c := range codes {
		if c == "" {
			continue
		}
		set[c] = struct{}{}
	}
	return set
}

func (s KnownSet) Contains(code string) bool {
	_, ok := s[code]
	return ok
}

func (s KnownSet) Empty() bool {
	return len(s) == 0
}

// Codes — отсортированный список кодов (для сохранения в сессию).
func (s KnownSet) Codes() []string {
	out := make([]string, 0, len(s))
	for code := range s {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}
