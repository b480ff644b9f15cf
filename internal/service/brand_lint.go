package service

import (
	"regexp"
	"sync"
)

const maskToken = "****"

var (
	lintMu    sync.RWMutex
	lintCache = make(map[string]*regexp.Regexp)
)

// ApplyBrandLinting masks every case-insensitive whole-word occurrence of
// each banned word. Substrings of longer words are left alone.
func ApplyBrandLinting(text string, bannedWords []string) string {
	if len(bannedWords) == 0 {
		return text
	}

	for _, word := range bannedWords {
		if word == "" {
			continue
		}
		text = bannedWordPattern(word).ReplaceAllString(text, maskToken)
	}
	return text
}

func bannedWordPattern(word string) *regexp.Regexp {
	lintMu.RLock()
	re, ok := lintCache[word]
	lintMu.RUnlock()
	if ok {
		return re
	}

	re = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)

	lintMu.Lock()
	lintCache[word] = re
	lintMu.Unlock()
	return re
}
