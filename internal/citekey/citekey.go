// Package citekey derives short deterministic citation keys from
// bibliographic metadata.
package citekey

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// shortTitleWords is the number of title content words kept in a key.
const shortTitleWords = 3

// punctuation is the ASCII punctuation set stripped from titles.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// dashVariants are replaced with spaces before simplification: slash,
// hyphen and em-dash, but not minus (-).
var dashVariants = []string{"/", "‐", "—"}

// possessiveSuffixes are stripped from titles regardless of what precedes
// them.
var possessiveSuffixes = []string{"'s", "'t", "'S", "'T"}

// Make builds a citation key from the first author's family name, the paper
// title and the publication year: the lowercased ASCII family name, then up
// to three capitalized content words from the title, then the year.
//
// The same inputs always yield the same key; titles with fewer than three
// content words simply yield a shorter key.
func Make(family, title string, year int) string {
	return foldFamily(family) + shortTitle(title, shortTitleWords) + strconv.Itoa(year)
}

// foldFamily lowercases the ASCII transliteration of a family name and
// removes underscores and internal whitespace.
func foldFamily(family string) string {
	family = strings.ReplaceAll(family, "_", "")
	family = asciiFold(family)
	family = strings.ToLower(family)
	return strings.ReplaceAll(family, " ", "")
}

// asciiFold decomposes accented characters and drops combining marks and
// any remaining non-ASCII runes.
func asciiFold(s string) string {
	s = norm.NFKD.String(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.Is(unicode.Mn, r) || r > unicode.MaxASCII {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// capitalize upper-cases the first character of s, or the character after a
// single leading space, leaving the rest unchanged. It is used both to
// rebuild title words and to produce the capitalized variant of each skip
// word so removal stays case-insensitive without lowercasing the title.
func capitalize(s string) string {
	r := []rune(s)
	if len(r) < 2 {
		return strings.ToUpper(s)
	}
	if r[0] == ' ' {
		return " " + string(unicode.ToUpper(r[1])) + string(r[2:])
	}
	return string(unicode.ToUpper(r[0])) + string(r[1:])
}

// simplify runs one title-simplification pass: dash variants become spaces,
// the title is transliterated to ASCII, possessive suffixes and punctuation
// are stripped, and every space-delimited skip word is removed in its
// lower, upper and capitalized spellings.
func simplify(title string) string {
	for _, d := range dashVariants {
		title = strings.ReplaceAll(title, d, " ")
	}
	title = " " + asciiFold(title) + " "
	for _, suf := range possessiveSuffixes {
		title = strings.ReplaceAll(title, suf, "")
	}
	title = strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return -1
		}
		return r
	}, title)
	for _, word := range skipWords {
		padded := " " + word + " "
		title = strings.ReplaceAll(title, padded, " ")
		title = strings.ReplaceAll(title, strings.ToUpper(padded), " ")
		title = strings.ReplaceAll(title, capitalize(padded), " ")
	}
	return title
}

// shortTitle simplifies the title to a fixed point, then concatenates the
// first n remaining words with their first letters capitalized. The fixed
// point guards against one pass exposing a skip word that only a further
// pass can remove.
func shortTitle(title string, n int) string {
	for {
		before := len(strings.ReplaceAll(title, " ", ""))
		title = simplify(title)
		if len(strings.ReplaceAll(title, " ", "")) == before {
			break
		}
	}

	var words []string
	for _, w := range strings.Split(title, " ") {
		if w == "" {
			continue
		}
		words = append(words, capitalize(w))
	}
	if len(words) > n {
		words = words[:n]
	}
	return strings.Join(words, "")
}
